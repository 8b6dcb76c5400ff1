// Package main implements the entry point for the FlashForge API
// server, which schedules users' spaced repetition flashcards and
// tracks their review streaks.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/flashforge-api/internal/config"
	"github.com/phrazzld/flashforge-api/internal/platform/boltstore"
	"github.com/phrazzld/flashforge-api/internal/platform/logger"
	"github.com/phrazzld/flashforge-api/internal/store"
)

// application bundles the wired dependencies for the server.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	store     *store.Store
	snapshots *boltstore.Store
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_path", cfg.Storage.Path)

	loc, err := cfg.Review.Location()
	if err != nil {
		return nil, err
	}

	snapshots, err := boltstore.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	st, err := store.New(snapshots, store.Options{
		DailyGoal: cfg.Review.DailyGoal,
		Timezone:  loc,
	}, appLogger)
	if err != nil {
		snapshots.Close()
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		store:     st,
		snapshots: snapshots,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.snapshots.Close(); err != nil {
		app.logger.Error("failed to close snapshot store", "error", err)
	}
}
