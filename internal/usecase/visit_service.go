package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mileusna/useragent"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/club-website/internal/domain/visit"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/riskibarqy/club-website/internal/platform/resilience"
)

const (
	defaultVisitWorkers      = 8
	defaultVisitWriteTimeout = 5 * time.Second
)

type VisitInput struct {
	PageURL   string
	UserAgent string
	Referrer  string
}

type VisitServiceConfig struct {
	Workers      int
	WriteTimeout time.Duration
	Breaker      resilience.CircuitBreakerConfig
	Location     *time.Location
}

// VisitService records page loads in the background. Storage failures are
// logged and never reach the caller.
type VisitService struct {
	repo         visit.Repository
	pool         *ants.Pool
	breaker      *resilience.CircuitBreaker
	logger       *logging.Logger
	location     *time.Location
	writeTimeout time.Duration
	now          func() time.Time
}

func NewVisitService(repo visit.Repository, cfg VisitServiceConfig, logger *logging.Logger) (*VisitService, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultVisitWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultVisitWriteTimeout
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	pool, err := ants.NewPool(cfg.Workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create visit worker pool: %w", err)
	}

	return &VisitService{
		repo:         repo,
		pool:         pool,
		breaker:      resilience.NewCircuitBreaker(cfg.Breaker),
		logger:       logger,
		location:     cfg.Location,
		writeTimeout: cfg.WriteTimeout,
		now:          time.Now,
	}, nil
}

// Record validates the visit and hands the write to the worker pool. It returns
// an error only for invalid input.
func (s *VisitService) Record(ctx context.Context, input VisitInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.VisitService.Record")
	defer span.End()

	v := visitFromInput(input, s.now().UTC())
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The request context ends with the response; the write must outlive it.
	taskCtx := context.WithoutCancel(ctx)
	if err := s.pool.Submit(func() { s.write(taskCtx, v) }); err != nil {
		s.logger.WarnContext(ctx, "visit dropped", "page_url", v.PageURL, "error", err)
	}
	return nil
}

func (s *VisitService) write(ctx context.Context, v visit.Visit) {
	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	err := s.breaker.Execute(func() error {
		return s.repo.Create(ctx, v)
	})
	switch {
	case err == nil:
	case errors.Is(err, resilience.ErrCircuitOpen):
		s.logger.DebugContext(ctx, "visit skipped, store circuit open", "page_url", v.PageURL)
	default:
		s.logger.WarnContext(ctx, "record visit failed", "page_url", v.PageURL, "error", err)
	}
}

// Stats returns visit counts for today, this week (from Monday) and this month
// in the configured time zone.
func (s *VisitService) Stats(ctx context.Context) (visit.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.VisitService.Stats")
	defer span.End()

	stats, err := s.repo.Stats(ctx, visit.WindowsAt(s.now(), s.location))
	if err != nil {
		return visit.Stats{}, fmt.Errorf("count visits: %w", err)
	}
	return stats, nil
}

// Close waits up to timeout for queued writes and stops the pool.
func (s *VisitService) Close(timeout time.Duration) error {
	if err := s.pool.ReleaseTimeout(timeout); err != nil {
		return fmt.Errorf("release visit worker pool: %w", err)
	}
	return nil
}

func visitFromInput(input VisitInput, at time.Time) visit.Visit {
	ua := useragent.Parse(input.UserAgent)

	v := visit.Visit{
		PageURL:   strings.TrimSpace(input.PageURL),
		UserAgent: input.UserAgent,
		Referrer:  strings.TrimSpace(input.Referrer),
		Browser:   ua.Name,
		OS:        ua.OS,
		CreatedAt: at,
	}

	switch {
	case strings.TrimSpace(input.UserAgent) == "":
		v.DeviceType = visit.DeviceUnknown
	case ua.Bot:
		v.DeviceType = visit.DeviceBot
	case ua.Tablet:
		v.DeviceType = visit.DeviceTablet
	case ua.Mobile:
		v.DeviceType = visit.DeviceMobile
	default:
		v.DeviceType = visit.DeviceDesktop
	}
	return v
}
