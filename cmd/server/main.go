// DevOps course catalog API server.
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

	"github.com/ashureev/devops-courses/internal/api"
	"github.com/ashureev/devops-courses/internal/catalog"
	"github.com/ashureev/devops-courses/internal/config"
	"github.com/ashureev/devops-courses/internal/progress"
	"github.com/ashureev/devops-courses/internal/seed"
	"github.com/ashureev/devops-courses/internal/store"
	"github.com/ashureev/devops-courses/internal/validate"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Logger is not configured yet; the default handler is fine here.
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting server", "port", cfg.Port, "progress_backend", cfg.ProgressBackend)

	// Seed the catalog before accepting traffic.
	courses, err := seed.Load(time.Now(), cfg.SeedPath)
	if err != nil {
		slog.Error("Failed to load seed data", "error", err, "seed_path", cfg.SeedPath)
		os.Exit(1)
	}
	cat, err := catalog.New(courses)
	if err != nil {
		slog.Error("Failed to build catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog seeded", "courses", cat.Len(), "categories", len(cat.Categories()))

	repo, err := store.New(cfg.ProgressBackend, cfg.ProgressDSN)
	if err != nil {
		slog.Error("Failed to initialize progress store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close progress store", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Progress store health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Progress store ready", "backend", cfg.ProgressBackend)

	// Initialize services and handlers.
	progressSvc := progress.NewService(cat, repo)

	r := api.NewRouter(
		api.NewCourseHandler(cat),
		api.NewProgressHandler(progressSvc, validate.New()),
		api.NewHealthHandler(progressSvc, cfg.Timeout.HealthCheck),
		cfg.AllowedOrigins,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout.Shutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
