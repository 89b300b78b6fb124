// Copyright (c) 2026 Wobble Private Server. All rights reserved.

// Command api is the entry point for the Wibble Wobble private server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Construct the in-memory store (the server's only state).
//  4. Wire HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/moritakane/wobble/internal/api"
	"github.com/moritakane/wobble/internal/game"
	"github.com/moritakane/wobble/internal/platform/config"
	"github.com/moritakane/wobble/internal/platform/constants"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("private_server_starting")
	log.Info("traffic_capture_enabled", slog.String("note", "all requests will be logged for analysis"))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// ── 3. State ──────────────────────────────────────────────────────────
	// Everything lives in process memory and dies with the process. That is
	// the design, not an oversight: each capture session starts clean.
	store := game.NewMemoryStore()

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	gameService := game.NewService(store, store)
	gameHandler := game.NewHandler(gameService)

	rootHandler, healthHandler := api.NewStatusHandlers()

	// ── 5. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Root:   rootHandler,
		Health: healthHandler,
		Game:   gameHandler,
	}

	server := api.NewServer(cfg, log, gameService, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
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

	users, sessions := store.Counts()
	log.Info("server_stopped_cleanly",
		slog.Int("users_seen", users),
		slog.Int("sessions_issued", sessions),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
