package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-website/internal/platform/id"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/riskibarqy/club-website/internal/platform/password"
)

func newTestAuthService(t *testing.T) (*AuthService, *memory.SessionRepository) {
	t.Helper()

	hash, err := password.Hash("leones-2024")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	sessions := memory.NewSessionRepository()
	service := NewAuthService(sessions, id.Static("sess-1"), AuthConfig{
		Username:     "admin",
		PasswordHash: hash,
		Secret:       []byte("test-secret"),
		SessionTTL:   time.Hour,
	}, logging.NewNop())
	return service, sessions
}

func TestAuthService_LoginAuthenticateLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _ := newTestAuthService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	login, err := service.Login(ctx, "admin", "leones-2024")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Token == "" || login.Username != "admin" || !login.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected login result: %+v", login)
	}

	sess, err := service.Authenticate(ctx, login.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if sess.ID != "sess-1" || sess.Username != "admin" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if err := service.Logout(ctx, login.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := service.Authenticate(ctx, login.Token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected token to be rejected after logout, got %v", err)
	}
	if err := service.Logout(ctx, login.Token); err != nil {
		t.Fatalf("expected repeated logout to succeed, got %v", err)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, _ := newTestAuthService(t)

	if _, err := service.Login(ctx, "admin", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for bad password, got %v", err)
	}
	if _, err := service.Login(ctx, "root", "leones-2024"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for bad username, got %v", err)
	}
	if _, err := service.Login(ctx, " ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank credentials, got %v", err)
	}
}

func TestAuthService_LoginWithoutConfiguredCredentials(t *testing.T) {
	t.Parallel()

	service := NewAuthService(memory.NewSessionRepository(), nil, AuthConfig{Username: "admin"}, logging.NewNop())
	if _, err := service.Login(context.Background(), "admin", "anything"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_ExpiredSessionAndPurge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, sessions := newTestAuthService(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	login, err := service.Login(ctx, "admin", "leones-2024")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := service.Authenticate(ctx, login.Token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}

	removed, err := service.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("purge expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one purged session, got %d", removed)
	}
	if _, ok, _ := sessions.Get(ctx, "sess-1"); ok {
		t.Fatalf("expected session row to be gone")
	}
}

func TestAuthService_AuthenticateRejectsForeignToken(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService(t)
	now := time.Now()
	token, err := signSessionToken([]byte("other-secret"), "sess-1", "admin", now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := service.Authenticate(context.Background(), token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := service.Authenticate(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
