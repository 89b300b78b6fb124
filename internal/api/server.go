// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The router has one property the rest of the system depends on: no request,
whatever its method or path, escapes without passing the traffic logger and
receiving a well-formed envelope. Unmatched routes land in the catch-all.
*/
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/moritakane/wobble/internal/game"
	"github.com/moritakane/wobble/internal/platform/config"
	"github.com/moritakane/wobble/internal/platform/constants"
	"github.com/moritakane/wobble/internal/platform/ctxutil"
	"github.com/moritakane/wobble/internal/platform/middleware"
	"github.com/moritakane/wobble/internal/platform/respond"
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
	// Root is the / handler — the client pings it as a health check.
	Root http.HandlerFunc

	// Health is the /api/health handler.
	Health http.HandlerFunc

	// Game handles the stubbed game routes (login, session, profile, game start).
	Game *game.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all routes, named and catch-all.
func NewServer(cfg *config.Config, log *slog.Logger, resolver middleware.SessionResolver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution. The traffic logger
	// must run for every request, named route or not, before its handler.
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLogger(log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.TrafficLogger(cfg.TrafficBodyLimit))
	r.Use(middleware.Authenticate(resolver))

	// # Infrastructure Endpoints
	// The client probes both the bare root and the /api health path.
	r.Get("/", h.Root)
	r.Post("/", h.Root)
	r.Get("/api/health", h.Health)

	// # Application Routes
	h.Game.Register(r)

	// # Catch-All
	// Both an unmatched path and a known path hit with the wrong method fall
	// through to the same stub so the client never receives a hard failure.
	r.NotFound(catchAll)
	r.MethodNotAllowed(catchAll)

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

// Router exposes the underlying handler for in-process tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// # Catch-All Route

// catchAll absorbs any method/path combination no named route claims.
//
// The unconditional success is deliberate: unimplemented client features must
// degrade gracefully while the operator watches the traffic log to decide
// what to stub next. The warning below is the operator's work queue.
func catchAll(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.GetLogger(request.Context())
	logger.Warn("unknown_endpoint_called",
		slog.String("method", request.Method),
		slog.String("path", request.URL.Path),
	)

	respond.Success(writer, nil, fmt.Sprintf("Endpoint %s - under development", request.URL.Path))
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
