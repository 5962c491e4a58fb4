// Package testhelpers provides database fixtures shared by package tests.
package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/recipe-catalog/backend/internal/database"
	"github.com/pageza/recipe-catalog/backend/internal/models"
)

// SetupTestDatabase returns a migrated, private in-memory SQLite database
// with foreign keys enforced. It is closed when the test ends.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_foreign_keys=1", name, uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// CreateAuthor inserts an author row directly, bypassing the service layer.
func CreateAuthor(t *testing.T, db *gorm.DB, name, email string) *models.Author {
	t.Helper()
	author := &models.Author{Name: name, Email: email}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("failed to create author %q: %v", email, err)
	}
	return author
}

// CreateIngredient inserts an ingredient row directly.
func CreateIngredient(t *testing.T, db *gorm.DB, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create ingredient %q: %v", name, err)
	}
	return ingredient
}

// CreateRecipe inserts a recipe and its lines directly.
func CreateRecipe(t *testing.T, db *gorm.DB, authorID uint, title string, lines ...models.RecipeIngredient) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{Title: title, AuthorID: authorID}
	if err := db.Omit("Ingredients", "Author").Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe %q: %v", title, err)
	}
	for i := range lines {
		lines[i].RecipeID = recipe.ID
		if err := db.Omit("Ingredient").Create(&lines[i]).Error; err != nil {
			t.Fatalf("failed to create recipe line: %v", err)
		}
	}
	return recipe
}

// Count returns the number of rows in model's table.
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}
