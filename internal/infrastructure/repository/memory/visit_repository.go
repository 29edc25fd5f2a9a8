package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/visit"
)

type VisitRepository struct {
	mu     sync.RWMutex
	visits []visit.Visit
	now    func() time.Time
}

func NewVisitRepository() *VisitRepository {
	return &VisitRepository{now: time.Now}
}

func (r *VisitRepository) Create(_ context.Context, v visit.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.CreatedAt.IsZero() {
		v.CreatedAt = r.now().UTC()
	}
	r.visits = append(r.visits, v)
	return nil
}

func (r *VisitRepository) Stats(_ context.Context, windows visit.Windows) (visit.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats visit.Stats
	for _, v := range r.visits {
		stats.Total++
		if !v.CreatedAt.Before(windows.DayStart) {
			stats.Today++
		}
		if !v.CreatedAt.Before(windows.WeekStart) {
			stats.ThisWeek++
		}
		if !v.CreatedAt.Before(windows.MonthStart) {
			stats.ThisMonth++
		}
	}
	return stats, nil
}

// Len reports how many visits are stored.
func (r *VisitRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.visits)
}
