// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the heroes HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the selected storage driver (PostgreSQL or in-memory).
//  4. Run database migrations when enabled (idempotent).
//  5. Connect to Redis when configured.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/heroes/internal/api"
	"github.com/taibuivan/heroes/internal/core/hero"
	"github.com/taibuivan/heroes/internal/platform/config"
	"github.com/taibuivan/heroes/internal/platform/constants"
	"github.com/taibuivan/heroes/internal/platform/memstore"
	"github.com/taibuivan/heroes/internal/platform/middleware"
	"github.com/taibuivan/heroes/internal/platform/migration"
	pgstore "github.com/taibuivan/heroes/internal/platform/postgres"
	redisstore "github.com/taibuivan/heroes/internal/platform/redis"
	"github.com/taibuivan/heroes/internal/platform/sec"
	"github.com/taibuivan/heroes/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// Bounded startup so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// Lives as long as the process; stops background loops on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	var (
		heroRepository hero.Repository
		userRepository auth.UserRepository
		checks         []api.DependencyCheck
	)

	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		// ── 4. Migrations ─────────────────────────────────────────────
		if cfg.AutoMigrate {
			must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		}

		heroRepository = hero.NewPostgresRepository(pool)
		userRepository = auth.NewUserRepository(pool)
		checks = append(checks, api.DependencyCheck{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		})

	case config.StorageDriverMemory:
		db, err := memstore.New()
		must(log, err, "create memory store")

		heroRepository = hero.NewMemoryRepository(db)
		userRepository = auth.NewMemoryUserRepository(db)
		log.Warn("memory_storage_enabled", slog.String("note", "data is lost on restart"))
	}

	// ── 5. Redis & Rate Limiting ──────────────────────────────────────────
	var limiter middleware.Limiter
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		limiter = middleware.NewRedisLimiter(rdb, constants.DefaultRateLimitBurst, constants.RateLimitWindow)
		checks = append(checks, api.DependencyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
		})
	} else {
		limiter = middleware.NewMemoryLimiter(rootCtx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.AccessTokenTTL)
	must(log, err, "initialize token service")

	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Info:      api.NewInfoHandler(cfg),
		Hero:      hero.NewHandler(hero.NewService(heroRepository, log)),
		Auth:      auth.NewHandler(auth.NewService(userRepository, tokenService, log)),
	}

	server := api.NewServer(cfg, log, api.Guards{Verifier: tokenService, Limiter: limiter}, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger every entry of which carries the app name.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Only startup wiring uses it. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
