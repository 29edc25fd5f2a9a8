package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/player"
)

type PlayerRepository struct {
	mu       sync.RWMutex
	players  map[int64]player.Player
	byNumber map[int]int64
	nextID   int64
	now      func() time.Time
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		players:  make(map[int64]player.Player, len(players)),
		byNumber: make(map[int]int64, len(players)),
		now:      time.Now,
	}
	for _, p := range players {
		r.nextID++
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.players[p.ID] = clonePlayer(p)
		r.byNumber[p.Number] = p.ID
	}
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) GetByNumber(_ context.Context, number int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[number]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(r.players[id]), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byNumber[p.Number]; taken {
		return player.Player{}, player.ErrDuplicateNumber
	}
	r.nextID++
	now := r.now().UTC()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.players[p.ID] = clonePlayer(p)
	r.byNumber[p.Number] = p.ID
	return clonePlayer(p), nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.players[p.ID]
	if !ok {
		return player.Player{}, false, nil
	}
	if holder, taken := r.byNumber[p.Number]; taken && holder != p.ID {
		return player.Player{}, false, player.ErrDuplicateNumber
	}
	delete(r.byNumber, current.Number)
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = r.now().UTC()
	r.players[p.ID] = clonePlayer(p)
	r.byNumber[p.Number] = p.ID
	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return false, nil
	}
	delete(r.players, id)
	delete(r.byNumber, p.Number)
	return true, nil
}

func clonePlayer(p player.Player) player.Player {
	p.Achievements = append([]string{}, p.Achievements...)
	if p.BirthDate != nil {
		d := *p.BirthDate
		p.BirthDate = &d
	}
	return p
}
