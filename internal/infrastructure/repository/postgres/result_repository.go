package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/domain/result"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

var resultReturning = "RETURNING " + strings.Join(resultSelectColumns, ", ")

func (r *ResultRepository) List(ctx context.Context) ([]result.Result, error) {
	query, args, err := qb.Select(resultSelectColumns...).From("ultimos_resultados").
		OrderBy("fecha DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list results query")
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list results")
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, resultFromRow(row))
	}
	return out, nil
}

func (r *ResultRepository) GetByID(ctx context.Context, id int64) (result.Result, bool, error) {
	query, args, err := qb.Select(resultSelectColumns...).From("ultimos_resultados").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return result.Result{}, false, crerr.Wrap(err, "build get result by id query")
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, crerr.Wrapf(err, "get result id=%d", id)
	}
	return resultFromRow(row), true, nil
}

func (r *ResultRepository) Create(ctx context.Context, item result.Result) (result.Result, error) {
	query, args, err := qb.InsertModel("ultimos_resultados", resultWriteFromDomain(item), resultReturning)
	if err != nil {
		return result.Result{}, crerr.Wrap(err, "build create result query")
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return result.Result{}, crerr.Wrap(err, "create result")
	}
	return resultFromRow(row), nil
}

func (r *ResultRepository) Update(ctx context.Context, item result.Result) (result.Result, bool, error) {
	query, args, err := qb.UpdateModel("ultimos_resultados", resultWriteFromDomain(item), []qb.Condition{qb.Eq("id", item.ID)}, resultReturning)
	if err != nil {
		return result.Result{}, false, crerr.Wrap(err, "build update result query")
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return result.Result{}, false, nil
		}
		return result.Result{}, false, crerr.Wrapf(err, "update result id=%d", item.ID)
	}
	return resultFromRow(row), true, nil
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("ultimos_resultados").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build delete result query")
	}
	return execAffected(ctx, r.db, "delete result", query, args)
}
