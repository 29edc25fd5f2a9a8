package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/domain/session"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

type sessionTableModel struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	query, args, err := qb.InsertModel("admin_sessions", sessionTableModel{
		ID:        s.ID,
		Username:  s.Username,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}, "")
	if err != nil {
		return crerr.Wrap(err, "build create session query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "create session")
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (session.Session, bool, error) {
	query, args, err := qb.Select("*").From("admin_sessions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return session.Session{}, false, crerr.Wrap(err, "build get session query")
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, crerr.Wrap(err, "get session")
	}
	return session.Session{
		ID:        row.ID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("admin_sessions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build delete session query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "delete session")
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := qb.DeleteFrom("admin_sessions").Where(qb.Expr("expires_at <= ?", now)).ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build delete expired sessions query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, crerr.Wrap(err, "delete expired sessions")
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, crerr.Wrap(err, "rows affected delete expired sessions")
	}
	return removed, nil
}
