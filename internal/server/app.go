// Package server wires configuration, storage, the AI advisor and the gRPC
// endpoint into a runnable application.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	"github.com/dmitrijs2005/diarykeeper/internal/server/ai"
	"github.com/dmitrijs2005/diarykeeper/internal/server/config"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/diarykeeper/internal/server/services"

	gs "github.com/dmitrijs2005/diarykeeper/internal/server/grpc"
)

// ErrNoDatabase is returned by Migrate when no DSN is configured.
var ErrNoDatabase = errors.New("database DSN is required")

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        repomanager.RepositoryManager
	userService  *services.UserService
	entryService *services.EntryService
}

// NewApp opens storage and builds the services. An empty DSN keeps all
// data in memory; otherwise pending migrations are applied first.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	advisor := ai.NewOllamaAdvisor(cfg.OllamaURL, cfg.OllamaModel, cfg.OllamaTimeout)

	return &App{
		config:       cfg,
		logger:       logger,
		repos:        repos,
		userService:  services.NewUserService(repos, cfg),
		entryService: services.NewEntryService(repos, advisor, logger.With("module", "entries")),
	}, nil
}

func openRepositories(ctx context.Context, cfg *config.Config, logger logging.Logger) (repomanager.RepositoryManager, error) {
	if cfg.DatabaseDSN == "" {
		logger.Warn(ctx, "No database configured, data is kept in memory")
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	pm, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := pm.RunMigrations(ctx); err != nil {
		_ = pm.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return pm, nil
}

// Run serves gRPC until ctx is cancelled, then closes storage.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		if err := app.repos.Close(); err != nil {
			app.logger.Error(ctx, "closing storage", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...", "model", app.config.OllamaModel)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.entryService, app.config.SecretKey, app.config.APIKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}

// Migrate runs a goose command ("up", "down", "status", ...) against the
// configured database.
func Migrate(ctx context.Context, cfg *config.Config, command string) error {
	if cfg.DatabaseDSN == "" {
		return ErrNoDatabase
	}

	pm, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer pm.Close()

	return pm.Migrate(ctx, command)
}
