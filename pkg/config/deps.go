package config

import (
	"log/slog"

	"github.com/amirasaad/expensetracker/pkg/cache"
	"github.com/amirasaad/expensetracker/pkg/repository"
	"github.com/amirasaad/expensetracker/pkg/storage"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow      repository.UnitOfWork
	Sessions cache.SessionStore
	Avatars  storage.FileStore
	Logger   *slog.Logger
	Config   *App
}
