package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "blog:list:published", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "players:list", []int{1, 2})
	if _, ok := store.Get(context.Background(), "players:list"); !ok {
		t.Fatalf("expected fresh entry to be cached")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "players:list"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Set(ctx, "blog:list:published", 1)
	store.Set(ctx, "blog:list:all", 2)
	store.Set(ctx, "players:list", 3)

	store.DeletePrefix(ctx, "blog:")

	if _, ok := store.Get(ctx, "blog:list:all"); ok {
		t.Fatalf("expected blog keys to be dropped")
	}
	if _, ok := store.Get(ctx, "players:list"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	got, err := Load(context.Background(), store, "matches:list", func(context.Context) ([]string, error) {
		return []string{"CD Norte"}, nil
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0] != "CD Norte" {
		t.Fatalf("unexpected value: %+v", got)
	}

	if _, err := Load(context.Background(), store, "matches:list", func(context.Context) (int, error) {
		return 0, nil
	}); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("db down")
	}

	for i := 0; i < 2; i++ {
		if _, err := Load(context.Background(), store, "k", loader); err == nil {
			t.Fatalf("expected loader error")
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("expected loader to run twice, got %d", calls.Load())
	}
}

func TestStore_InvalidationDuringLoadSkipsCaching(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan any, 1)

	go func() {
		v, _ := store.GetOrLoad(ctx, "blog:list:true", func(context.Context) (any, error) {
			close(started)
			<-release
			return "before-write", nil
		})
		done <- v
	}()

	<-started
	store.DeletePrefix(ctx, "blog:")
	close(release)

	if got := <-done; got != "before-write" {
		t.Fatalf("expected in-flight caller to get its load, got %v", got)
	}
	if _, ok := store.Get(ctx, "blog:list:true"); ok {
		t.Fatalf("expected load overtaken by invalidation not to be cached")
	}

	v, err := store.GetOrLoad(ctx, "blog:list:true", func(context.Context) (any, error) {
		return "after-write", nil
	})
	if err != nil || v != "after-write" {
		t.Fatalf("unexpected reload: %v %v", v, err)
	}
	if cached, ok := store.Get(ctx, "blog:list:true"); !ok || cached != "after-write" {
		t.Fatalf("expected fresh load to be cached, got %v", cached)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
