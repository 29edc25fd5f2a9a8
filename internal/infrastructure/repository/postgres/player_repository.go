package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/domain/player"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

const playerNumberConstraint = "players_numero_key"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").OrderBy("numero ASC").ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by id", qb.Eq("id", id))
}

func (r *PlayerRepository) GetByNumber(ctx context.Context, number int) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by number", qb.Eq("numero", number))
}

func (r *PlayerRepository) getOne(ctx context.Context, op string, where qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(where).ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrapf(err, "build %s query", op)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, op)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerWriteFromDomain(p), "RETURNING *")
	if err != nil {
		return player.Player{}, crerr.Wrap(err, "build create player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, playerNumberConstraint) {
			return player.Player{}, crerr.Wrapf(player.ErrDuplicateNumber, "create player numero=%d", p.Number)
		}
		return player.Player{}, crerr.Wrap(err, "create player")
	}
	return playerFromRow(row), nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, bool, error) {
	b, err := qb.UpdateFromModel("players", playerWriteFromDomain(p))
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build update player query")
	}
	query, args, err := b.SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", p.ID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return player.Player{}, false, crerr.Wrap(err, "build update player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		if isUniqueViolation(err, playerNumberConstraint) {
			return player.Player{}, false, crerr.Wrapf(player.ErrDuplicateNumber, "update player id=%d numero=%d", p.ID, p.Number)
		}
		return player.Player{}, false, crerr.Wrapf(err, "update player id=%d", p.ID)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build delete player query")
	}
	return execAffected(ctx, r.db, "delete player", query, args)
}
