package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/riskibarqy/club-website/internal/domain/player"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/club-website/internal/platform/cache"
)

type countingBlogRepository struct {
	blog.Repository
	listCalls int
}

func (r *countingBlogRepository) List(ctx context.Context, onlyPublished bool) ([]blog.Post, error) {
	r.listCalls++
	return r.Repository.List(ctx, onlyPublished)
}

func TestBlogRepository_CachesListAndInvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	inner := &countingBlogRepository{Repository: memory.NewBlogRepository(memory.SeedBlogPosts())}
	repo := NewBlogRepository(inner, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		items, err := repo.List(ctx, true)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 posts, got %d", len(items))
		}
	}
	if inner.listCalls != 1 {
		t.Fatalf("expected one store call, got %d", inner.listCalls)
	}

	if _, err := repo.Create(ctx, blog.Post{Title: "Nuevo", Slug: "nuevo", Content: "x", Published: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	items, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("list after create: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected cache invalidation after create, got %d posts", len(items))
	}
	if inner.listCalls != 2 {
		t.Fatalf("expected a reload after create, got %d calls", inner.listCalls)
	}
}

func TestBlogRepository_CachesMissingSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepository(memory.NewBlogRepository(nil), basecache.NewStore(time.Minute))

	if _, ok, err := repo.GetBySlug(ctx, "nada"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	if _, err := repo.Create(ctx, blog.Post{Title: "Nada", Slug: "nada", Content: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok, err := repo.GetBySlug(ctx, "nada"); err != nil || !ok {
		t.Fatalf("expected hit after create invalidated the cached miss, ok=%v err=%v", ok, err)
	}
}

func TestPlayerRepository_UpdateInvalidatesByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(memory.NewPlayerRepository(memory.SeedPlayers()), basecache.NewStore(time.Minute))

	p, ok, err := repo.GetByID(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	p.Stats.Goals = 3
	if _, ok, err := repo.Update(ctx, p); err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}

	got, _, _ := repo.GetByID(ctx, 1)
	if got.Stats.Goals != 3 {
		t.Fatalf("expected fresh player after update, goals=%d", got.Stats.Goals)
	}

	var _ player.Repository = repo
}
