package httpapi

import (
	"sync"

	"golang.org/x/time/rate"
)

const defaultLimiterCacheSize = 10000

// IPRateLimiter hands out one token bucket per client IP. When the table is
// full, buckets that have refilled completely are evicted first; the table is
// only dropped when every bucket is still draining.
type IPRateLimiter struct {
	mu         sync.RWMutex
	limiters   map[string]*rate.Limiter
	rate       rate.Limit
	burst      int
	maxEntries int
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters:   make(map[string]*rate.Limiter),
		rate:       rate.Limit(rps),
		burst:      burst,
		maxEntries: defaultLimiterCacheSize,
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	return l.get(ip).Allow()
}

func (l *IPRateLimiter) get(ip string) *rate.Limiter {
	l.mu.RLock()
	limiter, ok := l.limiters[ip]
	l.mu.RUnlock()
	if ok {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok = l.limiters[ip]; ok {
		return limiter
	}
	if len(l.limiters) >= l.maxEntries {
		l.evictIdleLocked()
	}
	if len(l.limiters) >= l.maxEntries {
		l.limiters = make(map[string]*rate.Limiter)
	}
	limiter = rate.NewLimiter(l.rate, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

func (l *IPRateLimiter) evictIdleLocked() {
	full := float64(l.burst)
	for ip, limiter := range l.limiters {
		if limiter.Tokens() >= full {
			delete(l.limiters, ip)
		}
	}
}

func (l *IPRateLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}
