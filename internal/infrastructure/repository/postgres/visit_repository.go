package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/domain/visit"
	qb "github.com/riskibarqy/club-website/internal/platform/querybuilder"
)

// One scan over visits answers every reporting window.
const visitStatsQuery = `SELECT
	COUNT(*) AS total_visits,
	COUNT(*) FILTER (WHERE created_at >= $1) AS visits_today,
	COUNT(*) FILTER (WHERE created_at >= $2) AS visits_this_week,
	COUNT(*) FILTER (WHERE created_at >= $3) AS visits_this_month
FROM visits`

type visitWriteModel struct {
	PageURL    string `db:"page_url"`
	UserAgent  string `db:"user_agent"`
	Referrer   string `db:"referrer"`
	Browser    string `db:"browser"`
	OS         string `db:"os"`
	DeviceType string `db:"device_type"`
}

type visitStatsRow struct {
	Total     int64 `db:"total_visits"`
	Today     int64 `db:"visits_today"`
	ThisWeek  int64 `db:"visits_this_week"`
	ThisMonth int64 `db:"visits_this_month"`
}

type VisitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Create(ctx context.Context, v visit.Visit) error {
	query, args, err := qb.InsertModel("visits", visitWriteModel{
		PageURL:    v.PageURL,
		UserAgent:  v.UserAgent,
		Referrer:   v.Referrer,
		Browser:    v.Browser,
		OS:         v.OS,
		DeviceType: v.DeviceType,
	}, "")
	if err != nil {
		return crerr.Wrap(err, "build create visit query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return crerr.Wrap(err, "create visit")
	}
	return nil
}

func (r *VisitRepository) Stats(ctx context.Context, windows visit.Windows) (visit.Stats, error) {
	var row visitStatsRow
	if err := r.db.GetContext(ctx, &row, visitStatsQuery, windows.DayStart, windows.WeekStart, windows.MonthStart); err != nil {
		return visit.Stats{}, crerr.Wrap(err, "count visits")
	}
	return visit.Stats{
		Total:     row.Total,
		Today:     row.Today,
		ThisWeek:  row.ThisWeek,
		ThisMonth: row.ThisMonth,
	}, nil
}
