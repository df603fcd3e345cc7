// main is the entry point of the Student Roster API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the SQLite snapshot store
//  4. Load the roster from its last snapshot
//  5. Register all HTTP routes
//  6. Start the HTTP server in a separate goroutine
//  7. Block until an OS signal (Ctrl+C / kill) arrives, then shut down
//
// RUNNING THE SERVER:
//
//	go run ./cmd/roster-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/roster-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/student-roster/internal/config"
	"github.com/aanand-mishra/student-roster/internal/http/handlers/student"
	"github.com/aanand-mishra/student-roster/internal/roster"
	"github.com/aanand-mishra/student-roster/internal/storage/sqlite"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting roster-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── Storage ───────────────────────────────────────────────────────────
	// The SQLite file only ever holds one value per key: the latest
	// snapshot of the whole roster.
	db, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath),
		slog.String("key", cfg.StorageKey))

	// ── Roster ────────────────────────────────────────────────────────────
	store, err := roster.New(db, roster.WithLogger(log))
	if err != nil {
		log.Error("failed to load roster",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── Routes ────────────────────────────────────────────────────────────
	router := http.NewServeMux()
	student.Register(router, store)

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed when Shutdown() is
		// called. That's expected — we don't want to log it as an error.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
