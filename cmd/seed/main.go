package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/pageza/recipe-catalog/backend/config"
	"github.com/pageza/recipe-catalog/backend/internal/api"
	"github.com/pageza/recipe-catalog/backend/internal/database"
	"github.com/pageza/recipe-catalog/backend/internal/logging"
	"github.com/pageza/recipe-catalog/backend/internal/seed"
	"github.com/pageza/recipe-catalog/backend/internal/service"
)

func main() {
	fixturePath := flag.String("file", "", "YAML fixture to load instead of the built-in catalog")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.SetDefaultStructuredLogger("recipes-seed", api.Version, "info")
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.SetDefaultStructuredLogger("recipes-seed", api.Version, cfg.LogLevel)

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		slog.Error("failed to load fixture", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("starting database seeding")
	summary, err := seed.Run(context.Background(), db, fixture)
	switch {
	case errors.Is(err, service.ErrAlreadyExists):
		slog.Info("database already seeded", "detail", err.Error())
	case err != nil:
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	default:
		slog.Info("seed data inserted",
			"authors", summary.Authors,
			"ingredients", summary.Ingredients,
			"recipes", summary.Recipes,
		)
	}
}

func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.DefaultFixture()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.Parse(data)
}
