// Command api is the Comeback Scout backend server.
//
// Usage:
//
//	scout-api
//	API_PORT=8080 scout-api

// @title Comeback Scout API
// @version 1.0.0
// @description Live-match comeback tracking: match snapshots with comeback probability scoring, and alerts for monitored teams primed to recover a deficit.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/comebackscout/comeback-scout/internal/api"
	"github.com/comebackscout/comeback-scout/internal/api/handler"
	"github.com/comebackscout/comeback-scout/internal/cache"
	"github.com/comebackscout/comeback-scout/internal/config"
	"github.com/comebackscout/comeback-scout/internal/db"
	"github.com/comebackscout/comeback-scout/internal/engine"
	"github.com/comebackscout/comeback-scout/internal/maintenance"
	"github.com/comebackscout/comeback-scout/internal/store"

	_ "github.com/comebackscout/comeback-scout/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Live-match engine and alert store
	eng := engine.New(cfg.LiveMatchCount, logger)
	alerts := store.NewAlerts(pool.Pool)
	logger.Info("Match engine started", "fixtures", cfg.LiveMatchCount)

	// Initialize cache
	appCache := cache.New(true)

	// Start maintenance tickers (advance, sweep, purge)
	go maintenance.Start(ctx, eng, alerts, alerts, maintenance.Config{
		AdvanceInterval: cfg.AdvanceEvery,
		SweepInterval:   cfg.SweepInterval,
		PurgeInterval:   cfg.PurgeInterval,
		AlertRetention:  cfg.AlertRetention,
	}, logger)

	// Create router
	h := handler.New(eng, alerts, pool, appCache, cfg, logger)
	router := api.NewRouter(h, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Comeback Scout API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
