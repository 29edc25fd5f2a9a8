package usecase

import (
	"strings"
	"sync"
	"time"
)

const (
	defaultLoginMaxFailedAttempts = 5
	defaultLoginLockoutDuration   = 15 * time.Minute
	defaultLoginAttemptWindow     = 15 * time.Minute
	maxLoginLockoutDuration       = 24 * time.Hour
)

// LoginLockoutConfig locks a username after MaxFailedAttempts failures inside
// AttemptWindow. Each further lockout of the same username doubles
// LockoutDuration, capped at 24h.
type LoginLockoutConfig struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
	AttemptWindow     time.Duration
}

type loginAttempt struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
	lockouts    int
}

type loginLockout struct {
	mu       sync.Mutex
	attempts map[string]*loginAttempt
	cfg      LoginLockoutConfig
}

func newLoginLockout(cfg LoginLockoutConfig) *loginLockout {
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = defaultLoginMaxFailedAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = defaultLoginLockoutDuration
	}
	if cfg.AttemptWindow <= 0 {
		cfg.AttemptWindow = defaultLoginAttemptWindow
	}
	return &loginLockout{
		attempts: make(map[string]*loginAttempt),
		cfg:      cfg,
	}
}

func lockoutKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (l *loginLockout) lockedUntil(username string, now time.Time) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	attempt, ok := l.attempts[lockoutKey(username)]
	if !ok || !now.Before(attempt.lockedUntil) {
		return time.Time{}, false
	}
	return attempt.lockedUntil, true
}

// recordFailure counts a failed login and reports whether it locked the username.
func (l *loginLockout) recordFailure(username string, now time.Time) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := lockoutKey(username)
	attempt, ok := l.attempts[key]
	if !ok {
		attempt = &loginAttempt{firstFailed: now}
		l.attempts[key] = attempt
	}
	if attempt.count == 0 || now.Sub(attempt.firstFailed) > l.cfg.AttemptWindow {
		attempt.count = 0
		attempt.firstFailed = now
	}
	attempt.count++
	if attempt.count < l.cfg.MaxFailedAttempts {
		return time.Time{}, false
	}

	duration := l.cfg.LockoutDuration
	for i := 0; i < attempt.lockouts && duration < maxLoginLockoutDuration; i++ {
		duration *= 2
	}
	if duration > maxLoginLockoutDuration {
		duration = maxLoginLockoutDuration
	}
	attempt.lockedUntil = now.Add(duration)
	attempt.lockouts++
	attempt.count = 0
	return attempt.lockedUntil, true
}

func (l *loginLockout) recordSuccess(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, lockoutKey(username))
}

// prune forgets usernames that are neither locked nor inside an attempt window.
func (l *loginLockout) prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, attempt := range l.attempts {
		if now.Before(attempt.lockedUntil) {
			continue
		}
		if attempt.count > 0 && now.Sub(attempt.firstFailed) <= l.cfg.AttemptWindow {
			continue
		}
		if attempt.lockouts > 0 && now.Sub(attempt.lockedUntil) <= maxLoginLockoutDuration {
			continue
		}
		delete(l.attempts, key)
		removed++
	}
	return removed
}
