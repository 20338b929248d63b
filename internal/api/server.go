// Copyright (c) 2026 Folio. All rights reserved.
// Author: minh.lehoang.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/minhle/folio/internal/assist"
	"github.com/minhle/folio/internal/auth"
	"github.com/minhle/folio/internal/library/book"
	"github.com/minhle/folio/internal/library/category"
	"github.com/minhle/folio/internal/library/chapter"
	"github.com/minhle/folio/internal/platform/config"
	"github.com/minhle/folio/internal/platform/constants"
	"github.com/minhle/folio/internal/platform/middleware"
	"github.com/minhle/folio/internal/platform/sec"
	"github.com/minhle/folio/internal/reader"
	"github.com/minhle/folio/internal/stats"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the account lifecycle (login, register, refresh).
	Auth *auth.Handler

	// Book handles the document catalogue.
	Book *book.Handler

	// Category handles shelves and the browsing tree.
	Category *category.Handler

	// Chapter handles per-book chapter management.
	Chapter *chapter.Handler

	// Reader handles reading sessions, pagination, and layout.
	Reader *reader.Handler

	// Assist handles the AI reading assistant.
	Assist *assist.Handler

	// Stats handles the anonymous visit counter.
	Stats *stats.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Anonymous reading surface.
		api.Mount("/books", h.Book.PublicRoutes())
		api.Mount("/books/{bookID}/chapters", h.Chapter.PublicRoutes())
		api.Mount("/categories", h.Category.PublicRoutes())
		api.Mount("/reader", h.Reader.Routes())
		api.Mount("/assist", h.Assist.Routes())
		api.Mount("/stats", h.Stats.Routes())

		// Back-office surface. Catalogue mutations require a librarian at minimum.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)
			admin.Use(middleware.RequireRole(sec.RoleLibrarian))

			admin.Mount("/books", h.Book.AdminRoutes())
			admin.Mount("/categories", h.Category.AdminRoutes())
			admin.Mount("/chapters", h.Chapter.AdminRoutes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
