package app

import (
	"github.com/amirasaad/expensetracker/pkg/config"
	"github.com/amirasaad/expensetracker/pkg/service/asset"
	"github.com/amirasaad/expensetracker/pkg/service/auth"
	"github.com/amirasaad/expensetracker/pkg/service/stats"
	"github.com/amirasaad/expensetracker/pkg/service/transaction"
	"github.com/amirasaad/expensetracker/pkg/service/user"
)

type App struct {
	Deps               config.Deps
	Config             *config.App
	AuthService        *auth.Service
	UserService        *user.Service
	AssetService       *asset.Service
	TransactionService *transaction.Service
	StatsService       *stats.Service
}

// New builds every service over the shared dependencies.
func New(deps config.Deps) *App {
	cfg := deps.Config
	tokens := auth.NewTokenService(cfg.Auth.Jwt, deps.Sessions, deps.Logger)
	return &App{
		Deps:               deps,
		Config:             cfg,
		AuthService:        auth.New(deps.Uow, tokens, deps.Logger),
		UserService:        user.NewService(deps),
		AssetService:       asset.NewService(deps),
		TransactionService: transaction.NewService(deps),
		StatsService:       stats.NewService(deps),
	}
}
