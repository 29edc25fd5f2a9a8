package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-website/internal/domain/session"
	"github.com/riskibarqy/club-website/internal/platform/id"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/riskibarqy/club-website/internal/platform/password"
)

const defaultSessionTTL = 24 * time.Hour

type AuthConfig struct {
	Username     string
	PasswordHash string
	Secret       []byte
	SessionTTL   time.Duration
	Lockout      LoginLockoutConfig
}

type LoginResult struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// AuthService issues and checks admin sessions. A token is valid only while its
// session row exists and has not expired.
type AuthService struct {
	sessions session.Repository
	ids      id.Generator
	cfg      AuthConfig
	logger   *logging.Logger
	lockout  *loginLockout
	now      func() time.Time
}

func NewAuthService(sessions session.Repository, ids id.Generator, cfg AuthConfig, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	return &AuthService{
		sessions: sessions,
		ids:      ids,
		cfg:      cfg,
		logger:   logger,
		lockout:  newLoginLockout(cfg.Lockout),
		now:      time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, username, plain string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	if strings.TrimSpace(username) == "" || plain == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if s.cfg.PasswordHash == "" || len(s.cfg.Secret) == 0 {
		s.logger.WarnContext(ctx, "admin login attempted but credentials are not configured")
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if until, locked := s.lockout.lockedUntil(username, s.now()); locked {
		return LoginResult{}, fmt.Errorf("%w: too many failed login attempts, retry after %s", ErrRateLimited, until.UTC().Format(time.RFC3339))
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passOK, err := password.Verify(plain, s.cfg.PasswordHash)
	if err != nil {
		return LoginResult{}, fmt.Errorf("verify admin password: %w", err)
	}
	if !userOK || !passOK {
		if until, locked := s.lockout.recordFailure(username, s.now()); locked {
			s.logger.WarnContext(ctx, "admin login locked after failed attempts", "username", username, "locked_until", until)
		}
		return LoginResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	s.lockout.recordSuccess(username)

	sessionID, err := s.ids.NewID()
	if err != nil {
		return LoginResult{}, fmt.Errorf("new session id: %w", err)
	}
	now := s.now().UTC()
	sess := session.Session{
		ID:        sessionID,
		Username:  s.cfg.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	token, err := signSessionToken(s.cfg.Secret, sess.ID, sess.Username, now, sess.ExpiresAt)
	if err != nil {
		return LoginResult{}, err
	}

	s.logger.InfoContext(ctx, "admin logged in", "username", sess.Username)
	return LoginResult{Token: token, Username: sess.Username, ExpiresAt: sess.ExpiresAt}, nil
}

// Authenticate resolves a bearer token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	if strings.TrimSpace(token) == "" || len(s.cfg.Secret) == 0 {
		return session.Session{}, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}

	now := s.now()
	claims, err := parseSessionToken(s.cfg.Secret, token, now)
	if err != nil {
		return session.Session{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	sess, exists, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !exists || sess.Expired(now) {
		return session.Session{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}
	return sess, nil
}

// Logout removes the session behind token. Unknown or invalid tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	if strings.TrimSpace(token) == "" || len(s.cfg.Secret) == 0 {
		return nil
	}
	claims, err := parseSessionToken(s.cfg.Secret, token, s.now())
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.PurgeExpired")
	defer span.End()

	now := s.now().UTC()
	s.lockout.prune(now)

	removed, err := s.sessions.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", err)
	}
	return removed, nil
}
