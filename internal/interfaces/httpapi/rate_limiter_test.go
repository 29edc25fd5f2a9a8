package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIPRateLimiter_PerIPBuckets(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)

	if !limiter.Allow("203.0.113.1") || !limiter.Allow("203.0.113.1") {
		t.Fatalf("expected burst of 2 to be allowed")
	}
	if limiter.Allow("203.0.113.1") {
		t.Fatalf("expected third request to be limited")
	}
	if !limiter.Allow("203.0.113.2") {
		t.Fatalf("expected other IP to have its own bucket")
	}
}

func TestIPRateLimiter_EvictsIdleBucketsFirst(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	limiter.maxEntries = 2

	limiter.get("idle")
	limiter.Allow("busy")
	limiter.Allow("busy")
	limiter.Allow("new")

	if limiter.Len() != 2 {
		t.Fatalf("expected idle bucket to be evicted, len=%d", limiter.Len())
	}
	if limiter.Allow("busy") {
		t.Fatalf("expected drained bucket to survive eviction")
	}
}

func TestIPRateLimiter_ResetsWhenEveryBucketIsDraining(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 1)
	limiter.maxEntries = 2

	limiter.Allow("a")
	limiter.Allow("b")
	limiter.Allow("c")
	if limiter.Len() != 1 {
		t.Fatalf("expected table to be reset, len=%d", limiter.Len())
	}
}

func TestRateLimit_Returns429(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimit(NewIPRateLimiter(0.001, 1), next)

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/api/visits", nil)
		req.RemoteAddr = "198.51.100.10:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected status %d, got %d", i, want, rec.Code)
		}
	}
}
