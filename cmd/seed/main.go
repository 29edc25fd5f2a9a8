package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/club-website/internal/app"
	"github.com/riskibarqy/club-website/internal/config"
	"github.com/riskibarqy/club-website/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-website/internal/platform/logging"
)

// seed loads the sample club content into an empty postgres database.
func main() {
	logger := logging.New(logging.LevelInfo, "console")
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("seed failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *logging.Logger) error {
	if err := config.LoadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.StorageDriver != config.StoragePostgres {
		return fmt.Errorf("seed needs STORAGE_DRIVER=%s, got %s", config.StoragePostgres, cfg.StorageDriver)
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeded, err := postgres.BootstrapSeed(ctx, db)
	if err != nil {
		return err
	}
	if !seeded {
		logger.Info("database already has content, nothing seeded", "db", app.DBNameFromURL(cfg.DBURL))
		return nil
	}
	logger.Info("sample content seeded", "db", app.DBNameFromURL(cfg.DBURL))
	return nil
}
