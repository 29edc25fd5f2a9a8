package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[int64]match.Match
	nextID  int64
	now     func() time.Time
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{
		matches: make(map[int64]match.Match, len(matches)),
		now:     time.Now,
	}
	for _, m := range matches {
		r.nextID++
		if m.ID == 0 {
			m.ID = r.nextID
		}
		if m.ID > r.nextID {
			r.nextID = m.ID
		}
		r.matches[m.ID] = cloneMatch(m)
	}
	return r
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		out = append(out, cloneMatch(m))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = r.now().UTC()
	r.matches[m.ID] = cloneMatch(m)
	return cloneMatch(m), nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (match.Match, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.matches[m.ID]
	if !ok {
		return match.Match{}, false, nil
	}
	m.CreatedAt = current.CreatedAt
	r.matches[m.ID] = cloneMatch(m)
	return cloneMatch(m), true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[id]; !ok {
		return false, nil
	}
	delete(r.matches, id)
	return true, nil
}

func cloneMatch(m match.Match) match.Match {
	if m.Venue != nil {
		v := *m.Venue
		m.Venue = &v
	}
	return m
}
