// Copyright (c) 2026 Moving Bridge. All rights reserved.

// Command api runs the Moving Bridge API server.
//
// Startup order: config -> logger -> postgres -> migrations -> redis ->
// wiring -> serve. Any failure before serving exits non-zero; after that,
// SIGINT/SIGTERM trigger a graceful drain.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nakknock/movingbridge/internal/api"
	"github.com/nakknock/movingbridge/internal/platform/config"
	"github.com/nakknock/movingbridge/internal/platform/constants"
	"github.com/nakknock/movingbridge/internal/platform/migration"
	"github.com/nakknock/movingbridge/internal/platform/postgres"
	"github.com/nakknock/movingbridge/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting",
		slog.String("app", constants.AppName),
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		return err
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, logger)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	server := api.New(ctx, cfg, logger, pool, redisClient)
	return server.Run(ctx)
}

// newLogger builds the process-wide structured logger. JSON in production,
// human-readable text with debug level in development.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With(slog.String("service", constants.AppName))
}
