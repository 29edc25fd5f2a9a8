package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/result"
)

type ResultRepository struct {
	mu      sync.RWMutex
	results map[int64]result.Result
	nextID  int64
	now     func() time.Time
}

func NewResultRepository(results []result.Result) *ResultRepository {
	r := &ResultRepository{
		results: make(map[int64]result.Result, len(results)),
		now:     time.Now,
	}
	for _, item := range results {
		r.nextID++
		if item.ID == 0 {
			item.ID = r.nextID
		}
		if item.ID > r.nextID {
			r.nextID = item.ID
		}
		r.results[item.ID] = cloneResult(item)
	}
	return r
}

func (r *ResultRepository) List(_ context.Context) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(r.results))
	for _, item := range r.results {
		out = append(out, cloneResult(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *ResultRepository) GetByID(_ context.Context, id int64) (result.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.results[id]
	if !ok {
		return result.Result{}, false, nil
	}
	return cloneResult(item), true, nil
}

func (r *ResultRepository) Create(_ context.Context, item result.Result) (result.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	item.CreatedAt = r.now().UTC()
	r.results[item.ID] = cloneResult(item)
	return cloneResult(item), nil
}

func (r *ResultRepository) Update(_ context.Context, item result.Result) (result.Result, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.results[item.ID]
	if !ok {
		return result.Result{}, false, nil
	}
	item.CreatedAt = current.CreatedAt
	r.results[item.ID] = cloneResult(item)
	return cloneResult(item), true, nil
}

func (r *ResultRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[id]; !ok {
		return false, nil
	}
	delete(r.results, id)
	return true, nil
}

func cloneResult(item result.Result) result.Result {
	if item.Venue != nil {
		v := *item.Venue
		item.Venue = &v
	}
	return item
}
