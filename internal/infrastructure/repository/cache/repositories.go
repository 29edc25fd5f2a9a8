package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/domain/player"
	"github.com/riskibarqy/club-website/internal/domain/result"
	basecache "github.com/riskibarqy/club-website/internal/platform/cache"
)

const (
	blogPrefix   = "blog:"
	playerPrefix = "player:"
	matchPrefix  = "match:"
	resultPrefix = "result:"
)

type cachedLookup[T any] struct {
	value  T
	exists bool
}

func lookup[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	cached, err := basecache.Load(ctx, store, key, func(ctx context.Context) (cachedLookup[T], error) {
		value, exists, err := load(ctx)
		if err != nil {
			return cachedLookup[T]{}, err
		}
		return cachedLookup[T]{value: value, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return cached.value, cached.exists, nil
}

func list[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	items, err := basecache.Load(ctx, store, key, func(ctx context.Context) ([]T, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}

type BlogRepository struct {
	next  blog.Repository
	cache *basecache.Store
}

func NewBlogRepository(next blog.Repository, cache *basecache.Store) *BlogRepository {
	return &BlogRepository{next: next, cache: cache}
}

func (r *BlogRepository) List(ctx context.Context, onlyPublished bool) ([]blog.Post, error) {
	key := blogPrefix + "list:" + strconv.FormatBool(onlyPublished)
	return list(ctx, r.cache, key, func(ctx context.Context) ([]blog.Post, error) {
		return r.next.List(ctx, onlyPublished)
	})
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (blog.Post, bool, error) {
	return lookup(ctx, r.cache, blogPrefix+"slug:"+slug, func(ctx context.Context) (blog.Post, bool, error) {
		return r.next.GetBySlug(ctx, slug)
	})
}

// SlugExists always reaches the store so collision checks never see stale data.
func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	return r.next.SlugExists(ctx, slug)
}

func (r *BlogRepository) Create(ctx context.Context, post blog.Post) (blog.Post, error) {
	defer r.cache.DeletePrefix(ctx, blogPrefix)
	return r.next.Create(ctx, post)
}

func (r *BlogRepository) UpdateBySlug(ctx context.Context, slug string, post blog.Post) (blog.Post, bool, error) {
	defer r.cache.DeletePrefix(ctx, blogPrefix)
	return r.next.UpdateBySlug(ctx, slug, post)
}

func (r *BlogRepository) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	defer r.cache.DeletePrefix(ctx, blogPrefix)
	return r.next.DeleteBySlug(ctx, slug)
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return list(ctx, r.cache, playerPrefix+"list", r.next.List)
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return lookup(ctx, r.cache, playerPrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

// GetByNumber backs the uniqueness check and is not cached.
func (r *PlayerRepository) GetByNumber(ctx context.Context, number int) (player.Player, bool, error) {
	return r.next.GetByNumber(ctx, number)
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	defer r.cache.DeletePrefix(ctx, playerPrefix)
	return r.next.Create(ctx, p)
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, bool, error) {
	defer r.cache.DeletePrefix(ctx, playerPrefix)
	return r.next.Update(ctx, p)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	defer r.cache.DeletePrefix(ctx, playerPrefix)
	return r.next.Delete(ctx, id)
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return list(ctx, r.cache, matchPrefix+"list", r.next.List)
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	return lookup(ctx, r.cache, matchPrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	defer r.cache.DeletePrefix(ctx, matchPrefix)
	return r.next.Create(ctx, m)
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (match.Match, bool, error) {
	defer r.cache.DeletePrefix(ctx, matchPrefix)
	return r.next.Update(ctx, m)
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	defer r.cache.DeletePrefix(ctx, matchPrefix)
	return r.next.Delete(ctx, id)
}

type ResultRepository struct {
	next  result.Repository
	cache *basecache.Store
}

func NewResultRepository(next result.Repository, cache *basecache.Store) *ResultRepository {
	return &ResultRepository{next: next, cache: cache}
}

func (r *ResultRepository) List(ctx context.Context) ([]result.Result, error) {
	return list(ctx, r.cache, resultPrefix+"list", r.next.List)
}

func (r *ResultRepository) GetByID(ctx context.Context, id int64) (result.Result, bool, error) {
	return lookup(ctx, r.cache, resultPrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (result.Result, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *ResultRepository) Create(ctx context.Context, item result.Result) (result.Result, error) {
	defer r.cache.DeletePrefix(ctx, resultPrefix)
	return r.next.Create(ctx, item)
}

func (r *ResultRepository) Update(ctx context.Context, item result.Result) (result.Result, bool, error) {
	defer r.cache.DeletePrefix(ctx, resultPrefix)
	return r.next.Update(ctx, item)
}

func (r *ResultRepository) Delete(ctx context.Context, id int64) (bool, error) {
	defer r.cache.DeletePrefix(ctx, resultPrefix)
	return r.next.Delete(ctx, id)
}
