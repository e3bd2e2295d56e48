package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/expensetracker/infra"
	infra_cache "github.com/amirasaad/expensetracker/infra/cache"
	infra_repository "github.com/amirasaad/expensetracker/infra/repository"
	infra_storage "github.com/amirasaad/expensetracker/infra/storage"
	"github.com/amirasaad/expensetracker/internal/migrations"
	"github.com/amirasaad/expensetracker/pkg/cache"
	"github.com/amirasaad/expensetracker/pkg/config"
)

// InitializeDependencies wires the database, session store and avatar store
// described by cfg. The returned cleanup releases them in reverse order.
func InitializeDependencies(cfg *config.App) (
	deps config.Deps,
	cleanup func(),
	err error,
) {
	logger := setupLogger(cfg.Log)
	deps = config.Deps{Logger: logger, Config: cfg}

	var closers []func() error
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("Cleanup failed", "error", err)
			}
		}
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return deps, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return deps, nil, err
	}
	closers = append(closers, sqlDB.Close)

	if cfg.DB.AutoMigrate {
		logger.Info("Applying database migrations")
		if err = migrations.Up(sqlDB); err != nil {
			return deps, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	deps.Uow = infra_repository.NewUoW(db, infra_repository.WithTimeout(cfg.DB.QueryTimeout))

	deps.Sessions, err = newSessionStore(cfg, logger)
	if err != nil {
		return deps, nil, err
	}
	if c, ok := deps.Sessions.(interface{ Close() error }); ok {
		closers = append(closers, c.Close)
	}

	deps.Avatars, err = infra_storage.NewLocalFileStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, logger)
	if err != nil {
		return deps, nil, fmt.Errorf("failed to initialize avatar store: %w", err)
	}

	return deps, release, nil
}

// newSessionStore returns a redis-backed store when REDIS_URL is set and an
// in-process one otherwise.
func newSessionStore(cfg *config.App, logger *slog.Logger) (cache.SessionStore, error) {
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		logger.Info("Using in-memory session store")
		return infra_cache.NewMemorySessionStore(), nil
	}
	store, err := infra_cache.NewRedisSessionStore(
		cfg.Redis.URL,
		cfg.Redis.KeyPrefix,
		cfg.Redis.ReadTimeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis session store: %w", err)
	}
	if err := store.Ping(context.Background()); err != nil {
		_ = store.Close()
		return nil, errors.Join(errors.New("redis session store unreachable"), err)
	}
	logger.Info("Using redis session store")
	return store, nil
}
