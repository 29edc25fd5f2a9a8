package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/club-website/internal/domain/player"
)

type playerTableModel struct {
	ID int64 `db:"id"`
	playerWriteModel
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playerWriteModel struct {
	Number        int            `db:"numero"`
	FirstName     string         `db:"nombre"`
	LastName      string         `db:"apellidos"`
	Position      string         `db:"posicion"`
	Age           int            `db:"edad"`
	Height        string         `db:"altura"`
	Weight        string         `db:"peso"`
	Nationality   string         `db:"nacionalidad"`
	BirthDate     sql.NullTime   `db:"fecha_nacimiento"`
	BirthPlace    string         `db:"lugar_nacimiento"`
	Photo         string         `db:"foto"`
	MatchesPlayed int            `db:"partidos_jugados"`
	Goals         int            `db:"goles"`
	Assists       int            `db:"asistencias"`
	YellowCards   int            `db:"tarjetas_amarillas"`
	RedCards      int            `db:"tarjetas_rojas"`
	MinutesPlayed int            `db:"minutos_jugados"`
	Speed         int            `db:"velocidad"`
	Stamina       int            `db:"resistencia"`
	Strength      int            `db:"fuerza"`
	Technique     int            `db:"tecnica"`
	Passing       int            `db:"pase"`
	Dribbling     int            `db:"regate"`
	Defending     int            `db:"defensa"`
	Goalkeeping   int            `db:"porteria"`
	Biography     string         `db:"biografia"`
	Achievements  pq.StringArray `db:"logros"`
}

func playerWriteFromDomain(p player.Player) playerWriteModel {
	return playerWriteModel{
		Number:        p.Number,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Position:      string(p.Position),
		Age:           p.Age,
		Height:        p.Height,
		Weight:        p.Weight,
		Nationality:   p.Nationality,
		BirthDate:     timePtrToNull(p.BirthDate),
		BirthPlace:    p.BirthPlace,
		Photo:         p.Photo,
		MatchesPlayed: p.Stats.MatchesPlayed,
		Goals:         p.Stats.Goals,
		Assists:       p.Stats.Assists,
		YellowCards:   p.Stats.YellowCards,
		RedCards:      p.Stats.RedCards,
		MinutesPlayed: p.Stats.MinutesPlayed,
		Speed:         p.Skills.Speed,
		Stamina:       p.Skills.Stamina,
		Strength:      p.Skills.Strength,
		Technique:     p.Skills.Technique,
		Passing:       p.Skills.Passing,
		Dribbling:     p.Skills.Dribbling,
		Defending:     p.Skills.Defending,
		Goalkeeping:   p.Skills.Goalkeeping,
		Biography:     p.Biography,
		Achievements:  stringArray(p.Achievements),
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:          row.ID,
		Number:      row.Number,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Position:    player.Position(row.Position),
		Age:         row.Age,
		Height:      row.Height,
		Weight:      row.Weight,
		Nationality: row.Nationality,
		BirthDate:   nullToTimePtr(row.BirthDate),
		BirthPlace:  row.BirthPlace,
		Photo:       row.Photo,
		Stats: player.Stats{
			MatchesPlayed: row.MatchesPlayed,
			Goals:         row.Goals,
			Assists:       row.Assists,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			MinutesPlayed: row.MinutesPlayed,
		},
		Skills: player.Skills{
			Speed:       row.Speed,
			Stamina:     row.Stamina,
			Strength:    row.Strength,
			Technique:   row.Technique,
			Passing:     row.Passing,
			Dribbling:   row.Dribbling,
			Defending:   row.Defending,
			Goalkeeping: row.Goalkeeping,
		},
		Biography:    row.Biography,
		Achievements: append([]string{}, row.Achievements...),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
