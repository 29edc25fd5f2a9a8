package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/club-website/internal/config"
	"github.com/riskibarqy/club-website/internal/interfaces/httpapi"
	"github.com/riskibarqy/club-website/internal/platform/id"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/riskibarqy/club-website/internal/platform/resilience"
	"github.com/riskibarqy/club-website/internal/usecase"
	"github.com/robfig/cron/v3"
)

const defaultDrainTimeout = 5 * time.Second

// Server bundles the HTTP server with the background pieces that must be
// stopped alongside it.
type Server struct {
	HTTP      *http.Server
	visits    *usecase.VisitService
	scheduler *cron.Cron
	closeDB   func() error
	logger    *logging.Logger
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	visitSvc, err := usecase.NewVisitService(repos.visits, usecase.VisitServiceConfig{
		Workers: cfg.VisitPoolSize,
		Breaker: resilience.CircuitBreakerConfig{
			FailureThreshold: cfg.VisitCircuitFailureCount,
			OpenTimeout:      cfg.VisitCircuitOpenTimeout,
		},
		Location: cfg.Location,
	}, logger.Named("visits"))
	if err != nil {
		_ = repos.close()
		return nil, err
	}

	if cfg.AdminPasswordHash == "" {
		logger.Warn("ADMIN_PASSWORD_HASH is empty, admin login is disabled")
	}
	authSvc := usecase.NewAuthService(repos.sessions, id.NewUUIDGenerator(), usecase.AuthConfig{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
		Secret:       []byte(cfg.SessionSecret),
		SessionTTL:   cfg.SessionTTL,
		Lockout: usecase.LoginLockoutConfig{
			MaxFailedAttempts: cfg.LoginMaxFailedAttempts,
			LockoutDuration:   cfg.LoginLockoutDuration,
			AttemptWindow:     cfg.LoginAttemptWindow,
		},
	}, logger.Named("auth"))

	scheduler, err := newScheduler(cfg.SessionPurgeSchedule, cfg.Location, authSvc, logger.Named("jobs"))
	if err != nil {
		_ = visitSvc.Close(0)
		_ = repos.close()
		return nil, err
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Blog:      usecase.NewBlogService(repos.blog),
		Players:   usecase.NewPlayerService(repos.players),
		Matches:   usecase.NewMatchService(repos.matches),
		Results:   usecase.NewResultService(repos.results),
		Visits:    visitSvc,
		Auth:      authSvc,
		Dashboard: usecase.NewDashboardService(repos.blog, repos.players, repos.matches, repos.results, visitSvc, cfg.Location),
	}, logger)

	router := httpapi.NewRouter(handler, authSvc, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		LoginLimiter:       httpapi.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		VisitLimiter:       httpapi.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		TrustedProxies:     cfg.TrustedProxies,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		visits:    visitSvc,
		scheduler: scheduler,
		closeDB:   repos.close,
		logger:    logger,
	}, nil
}

// Start runs the scheduled jobs and blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	s.scheduler.Start()
	s.logger.Info("http server starting", "addr", s.HTTP.Addr)
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, then drains the visit pool and the
// scheduler before closing the database.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.HTTP.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}

	<-s.scheduler.Stop().Done()

	timeout := defaultDrainTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if err := s.visits.Close(timeout); err != nil {
		errs = append(errs, fmt.Errorf("drain visit pool: %w", err))
	}
	if err := s.closeDB(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
