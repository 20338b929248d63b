// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

// Command api is the entry point for the Folio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) — or boot in offline mode without it.
//  4. Connect to Redis — or run without the visit counter and token flows.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// Every backend is optional. A missing DATABASE_URL, REDIS_URL, or
// OPENAI_API_KEY narrows the feature set instead of aborting startup:
// the reader itself only needs the process to be alive.
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
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/minhle/folio/internal/api"
	"github.com/minhle/folio/internal/assist"
	"github.com/minhle/folio/internal/auth"
	"github.com/minhle/folio/internal/library/book"
	"github.com/minhle/folio/internal/library/category"
	"github.com/minhle/folio/internal/library/chapter"
	"github.com/minhle/folio/internal/platform/config"
	"github.com/minhle/folio/internal/platform/constants"
	"github.com/minhle/folio/internal/platform/migration"
	pgstore "github.com/minhle/folio/internal/platform/postgres"
	redisstore "github.com/minhle/folio/internal/platform/redis"
	"github.com/minhle/folio/internal/platform/sec"
	"github.com/minhle/folio/internal/reader"
	"github.com/minhle/folio/internal/render"
	"github.com/minhle/folio/internal/stats"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "folio"))
	slog.SetDefault(log)

	log.Info("[Folio] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "folio"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("database", cfg.HasDatabase()),
		slog.Bool("cache", cfg.HasCache()),
		slog.Bool("assistant", cfg.HasAssistant()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL (optional) ──────────────────────────────────────────
	var pool *pgxpool.Pool
	if cfg.HasDatabase() {
		pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		// ── 4. Migrations ─────────────────────────────────────────────────
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	} else {
		log.Warn("database_not_configured",
			slog.String("effect", "library is empty and catalogue mutations are unavailable"))
	}

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.HasCache() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	} else {
		log.Warn("cache_not_configured",
			slog.String("effect", "visit counter reads zero and recovery tokens are disabled"))
	}

	// ── 6. Token Service ──────────────────────────────────────────────────
	var jwtSvc *sec.TokenService
	if cfg.JWTPrivKeyPath != "" && cfg.JWTPubKeyPath != "" {
		jwtSvc, err = sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "initialize jwt service")
	} else {
		if cfg.IsProduction() {
			must(log, errors.New("JWT key paths are required in production"), "initialize jwt service")
		}
		jwtSvc, err = sec.NewEphemeralTokenService(constants.AuthIssuer)
		must(log, err, "initialize ephemeral jwt service")
		log.Warn("jwt_keys_not_configured",
			slog.String("effect", "using an ephemeral in-memory signing key"))
	}

	// ── 7. Domain Wiring ──────────────────────────────────────────────────

	// Library catalogue: real repositories behind a pool, offline ones without.
	var (
		bookRepository     book.Repository
		categoryRepository category.Repository
		chapterRepository  chapter.Repository
	)
	if pool != nil {
		bookRepository = book.NewPostgresRepository(pool)
		categoryRepository = category.NewPostgresRepository(pool)
		chapterRepository = chapter.NewPostgresRepository(pool)
	} else {
		bookRepository = book.NewOfflineRepository()
		categoryRepository = category.NewOfflineRepository()
		chapterRepository = chapter.NewOfflineRepository()
	}

	bookService := book.NewService(bookRepository, log)
	categoryService := category.NewService(categoryRepository, log)
	chapterService := chapter.NewService(chapterRepository, log)

	// Reading sessions and the pagination engine.
	sessionManager := reader.NewManager()
	readerService := reader.NewService(bookService, render.NewPDFRenderer(log), sessionManager, log)

	// Reading assistant: real provider with a key, static fallback without.
	var assistant assist.Assistant
	if cfg.HasAssistant() {
		assistant = assist.NewOpenAIAssistant(cfg.AssistantAPIKey, log)
	} else {
		assistant = assist.NewDisabledAssistant()
		log.Warn("assistant_not_configured",
			slog.String("effect", "assistant endpoints answer with a static message"))
	}
	assistService := assist.NewService(assistant, readerService, log)

	// Visit counter.
	var visitStore stats.Store
	if rdb != nil {
		visitStore = stats.NewRedisStore(rdb)
	} else {
		visitStore = stats.NewNoopStore()
	}
	statsService := stats.NewService(visitStore, log)

	// Accounts.
	var (
		userRepository    auth.UserRepository
		sessionRepository auth.SessionRepository
	)
	if pool != nil {
		userRepository = auth.NewUserRepository(pool)
		sessionRepository = auth.NewSessionRepository(pool)
	} else {
		userRepository = auth.OfflineUserRepository{}
		sessionRepository = auth.OfflineSessionRepository{}
	}

	var resetTokens, verificationTokens auth.TokenRepository
	if rdb != nil {
		resetTokens = auth.NewResetTokenRepository(rdb)
		verificationTokens = auth.NewVerificationTokenRepository(rdb)
	} else {
		resetTokens = auth.DisabledTokenRepository{}
		verificationTokens = auth.DisabledTokenRepository{}
	}

	authService := auth.NewService(userRepository, sessionRepository, resetTokens, verificationTokens, jwtSvc)

	// ── 8. Health handlers (checkers wired only for configured backends) ──
	healthDeps := api.HealthDependencies{
		ReaderSessions: sessionManager.Len,
	}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	if rdb != nil {
		healthDeps.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Book:      book.NewHandler(bookService),
		Category:  category.NewHandler(categoryService),
		Chapter:   chapter.NewHandler(chapterService),
		Reader:    reader.NewHandler(readerService),
		Assist:    assist.NewHandler(assistService),
		Stats:     stats.NewHandler(statsService),
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
