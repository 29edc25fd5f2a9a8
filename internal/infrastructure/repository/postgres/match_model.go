package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/domain/result"
)

// DATE and TIME columns are read back as text so the domain keeps its layouts.
var matchSelectColumns = []string{
	"id",
	"rival",
	"fecha::text AS fecha",
	"to_char(hora, 'HH24:MI') AS hora",
	"local",
	"competicion",
	"estadio",
	"created_at",
}

var resultSelectColumns = []string{
	"id",
	"rival",
	"fecha::text AS fecha",
	"goles_favor",
	"goles_contra",
	"local",
	"competicion",
	"estadio",
	"created_at",
}

type matchTableModel struct {
	ID          int64          `db:"id"`
	Opponent    string         `db:"rival"`
	Date        string         `db:"fecha"`
	Time        string         `db:"hora"`
	Home        bool           `db:"local"`
	Competition string         `db:"competicion"`
	Venue       sql.NullString `db:"estadio"`
	CreatedAt   time.Time      `db:"created_at"`
}

type matchWriteModel struct {
	Opponent    string         `db:"rival"`
	Date        string         `db:"fecha"`
	Time        string         `db:"hora"`
	Home        bool           `db:"local"`
	Competition string         `db:"competicion"`
	Venue       sql.NullString `db:"estadio"`
}

func matchWriteFromDomain(m match.Match) matchWriteModel {
	return matchWriteModel{
		Opponent:    m.Opponent,
		Date:        m.Date,
		Time:        m.Time,
		Home:        m.Home,
		Competition: m.Competition,
		Venue:       stringPtrToNull(m.Venue),
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		Opponent:    row.Opponent,
		Date:        row.Date,
		Time:        row.Time,
		Home:        row.Home,
		Competition: row.Competition,
		Venue:       nullToStringPtr(row.Venue),
		CreatedAt:   row.CreatedAt,
	}
}

type resultTableModel struct {
	ID           int64          `db:"id"`
	Opponent     string         `db:"rival"`
	Date         string         `db:"fecha"`
	GoalsFor     int            `db:"goles_favor"`
	GoalsAgainst int            `db:"goles_contra"`
	Home         bool           `db:"local"`
	Competition  string         `db:"competicion"`
	Venue        sql.NullString `db:"estadio"`
	CreatedAt    time.Time      `db:"created_at"`
}

type resultWriteModel struct {
	Opponent     string         `db:"rival"`
	Date         string         `db:"fecha"`
	GoalsFor     int            `db:"goles_favor"`
	GoalsAgainst int            `db:"goles_contra"`
	Home         bool           `db:"local"`
	Competition  string         `db:"competicion"`
	Venue        sql.NullString `db:"estadio"`
}

func resultWriteFromDomain(r result.Result) resultWriteModel {
	return resultWriteModel{
		Opponent:     r.Opponent,
		Date:         r.Date,
		GoalsFor:     r.GoalsFor,
		GoalsAgainst: r.GoalsAgainst,
		Home:         r.Home,
		Competition:  r.Competition,
		Venue:        stringPtrToNull(r.Venue),
	}
}

func resultFromRow(row resultTableModel) result.Result {
	return result.Result{
		ID:           row.ID,
		Opponent:     row.Opponent,
		Date:         row.Date,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		Home:         row.Home,
		Competition:  row.Competition,
		Venue:        nullToStringPtr(row.Venue),
		CreatedAt:    row.CreatedAt,
	}
}
