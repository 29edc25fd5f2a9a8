package app

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

const purgeJobTimeout = 30 * time.Second

type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// newScheduler registers the background jobs. The returned cron is not started.
func newScheduler(schedule string, location *time.Location, purger sessionPurger, logger *logging.Logger) (*cron.Cron, error) {
	if location == nil {
		location = time.UTC
	}
	scheduler := cron.New(cron.WithLocation(location))
	if _, err := scheduler.AddFunc(schedule, func() { purgeExpiredSessions(purger, logger) }); err != nil {
		return nil, fmt.Errorf("schedule session purge %q: %w", schedule, err)
	}
	return scheduler, nil
}

func purgeExpiredSessions(purger sessionPurger, logger *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeJobTimeout)
	defer cancel()

	removed, err := purger.PurgeExpired(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "purge expired sessions failed", "error", err)
		return
	}
	if removed > 0 {
		logger.InfoContext(ctx, "purged expired sessions", "count", removed)
	}
}
