package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/db"
	"github.com/agrovia/portal/internal/portal"
	"github.com/agrovia/portal/internal/rest"
	"github.com/agrovia/portal/internal/rpc"
	"github.com/agrovia/portal/internal/site"
)

const rpcPath = "/rpc"

type App struct {
	Executor *db.Executor
	Source   portal.Source
	Logger   *slog.Logger
	Echo     *echo.Echo
	Config   config.Config
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	executor := db.NewExecutor(
		cfg.Database.Options(),
		logger,
		db.NewQueryHook(logger, cfg.Database.LogQueries),
	)
	manager := portal.NewManager(db.New(executor))
	mock := portal.NewMockSource()

	source, err := NewSource(cfg.Content, manager, mock, logger)
	if err != nil {
		return nil, err
	}

	e := rest.NewEcho(logger, rest.ServerOptions{RateLimit: cfg.App.RateLimit})
	rest.NewContentHandler(source, mock, manager, cfg, logger).RegisterRoutes(e)
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, source, cfg.Content)))
	site.NewHandler(source, cfg.Site, cfg.App.APIURL, logger).RegisterRoutes(e)

	return &App{
		Executor: executor,
		Source:   source,
		Logger:   logger,
		Echo:     e,
		Config:   cfg,
	}, nil
}

// NewSource selects the content source for the configured mode.
func NewSource(cfg config.Content, manager *portal.Manager, mock portal.Source, logger *slog.Logger) (portal.Source, error) {
	if cfg.Mode == config.ModeMock {
		logger.Warn("content mode is mock, the database is only used by /api/test-db")
		return mock, nil
	}

	live := portal.NewLiveSource(manager)
	if !cfg.Fallback {
		return live, nil
	}

	timeout, err := time.ParseDuration(cfg.BreakerTimeout)
	if err != nil {
		return nil, fmt.Errorf("parse content breaker timeout: %w", err)
	}

	return portal.NewFallbackSource(live, mock, portal.BreakerConfig{
		Name:     "content-live",
		Failures: cfg.BreakerFailures,
		Timeout:  timeout,
	}, logger), nil
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("service starting", "addr", addr, "mode", a.Config.Content.Mode)

	if err := a.Executor.Ping(ctx); err != nil {
		a.Logger.Warn("database not reachable at startup", "error", err)
	}

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return a.Executor.Release()
}
