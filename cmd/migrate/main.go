package main

import (
	"log/slog"
	"os"

	"github.com/pageza/recipe-catalog/backend/config"
	"github.com/pageza/recipe-catalog/backend/internal/api"
	"github.com/pageza/recipe-catalog/backend/internal/database"
	"github.com/pageza/recipe-catalog/backend/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.SetDefaultStructuredLogger("recipes-migrate", api.Version, "info")
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.SetDefaultStructuredLogger("recipes-migrate", api.Version, cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	slog.Info("starting database schema initialization")
	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to initialize database schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema created or already present")
}
