package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/domain/match"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

var matchReturning = "RETURNING " + strings.Join(matchSelectColumns, ", ")

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("proximos_partidos").
		OrderBy("fecha ASC", "hora ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("proximos_partidos").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match by id query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match id=%d", id)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("proximos_partidos", matchWriteFromDomain(m), matchReturning)
	if err != nil {
		return match.Match{}, crerr.Wrap(err, "build create match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return match.Match{}, crerr.Wrap(err, "create match")
	}
	return matchFromRow(row), nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (match.Match, bool, error) {
	query, args, err := qb.UpdateModel("proximos_partidos", matchWriteFromDomain(m), []qb.Condition{qb.Eq("id", m.ID)}, matchReturning)
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build update match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "update match id=%d", m.ID)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("proximos_partidos").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build delete match query")
	}
	return execAffected(ctx, r.db, "delete match", query, args)
}
