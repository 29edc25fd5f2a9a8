package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-website/internal/config"
	"github.com/riskibarqy/club-website/internal/domain/blog"
	"github.com/riskibarqy/club-website/internal/domain/match"
	"github.com/riskibarqy/club-website/internal/domain/player"
	"github.com/riskibarqy/club-website/internal/domain/result"
	"github.com/riskibarqy/club-website/internal/domain/session"
	"github.com/riskibarqy/club-website/internal/domain/visit"
	cacherepo "github.com/riskibarqy/club-website/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/club-website/internal/platform/cache"
	"github.com/riskibarqy/club-website/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

const dbPingTimeout = 5 * time.Second

type repositories struct {
	blog     blog.Repository
	players  player.Repository
	matches  match.Repository
	results  result.Repository
	visits   visit.Repository
	sessions session.Repository
	close    func() error
}

func newRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("using in-memory storage", "storage_driver", cfg.StorageDriver)
		repos = repositories{
			blog:     memory.NewBlogRepository(memory.SeedBlogPosts()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:  memory.NewMatchRepository(memory.SeedMatches()),
			results:  memory.NewResultRepository(memory.SeedResults()),
			visits:   memory.NewVisitRepository(),
			sessions: memory.NewSessionRepository(),
			close:    func() error { return nil },
		}
	default:
		db, err := OpenDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		logger.Info("postgres connected", "db_name", DBNameFromURL(cfg.DBURL), "max_open_conns", cfg.DBMaxOpenConns)
		repos = repositories{
			blog:     postgres.NewBlogRepository(db),
			players:  postgres.NewPlayerRepository(db),
			matches:  postgres.NewMatchRepository(db),
			results:  postgres.NewResultRepository(db),
			visits:   postgres.NewVisitRepository(db),
			sessions: postgres.NewSessionRepository(db),
			close:    db.Close,
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.blog = cacherepo.NewBlogRepository(repos.blog, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
		repos.results = cacherepo.NewResultRepository(repos.results, store)
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, nil
}

// OpenDB opens a traced postgres pool and verifies it answers a ping.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(DBNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithAttributes(attribute.String("db.system", "postgresql")))

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
