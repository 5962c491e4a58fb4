package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/internal/models"
	"github.com/pageza/recipe-catalog/backend/internal/store"
)

// MaxUnitLength is the widest unit string a recipe line may carry.
const MaxUnitLength = 10

// RecipeLine is one ingredient requirement of a recipe.
type RecipeLine struct {
	IngredientID uint
	Quantity     float64
	Unit         string
}

// RecipeInput carries the fields needed to create a recipe.
type RecipeInput struct {
	Title       string
	Description *string
	AuthorID    uint
	Ingredients []RecipeLine
}

// RecipeUpdate is a partial recipe update. A nil Ingredients keeps the current
// lines; a non-nil empty slice removes them all.
type RecipeUpdate struct {
	Title       *string
	Description *string
	Ingredients *[]RecipeLine
}

// RecipeService manages recipes together with their ingredient lines
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe validates the author and every referenced ingredient, then
// stores the recipe and its lines in one transaction.
func (s *RecipeService) CreateRecipe(ctx context.Context, in RecipeInput) (*models.Recipe, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidPayload("recipe title is required")
	}
	lines, err := normalizeLines(in.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		Title:       in.Title,
		Description: in.Description,
		AuthorID:    in.AuthorID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := store.NewAuthorStore(tx).GetByID(ctx, in.AuthorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return authorNotFound(in.AuthorID)
			}
			return fmt.Errorf("failed to get author: %w", err)
		}
		if err := ensureIngredientsExist(ctx, store.NewIngredientStore(tx), lineIDs(lines)); err != nil {
			return err
		}
		if err := store.NewRecipeStore(tx).Create(ctx, recipe, lines); err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe returns the recipe with its author and ingredient lines.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := store.NewRecipeStore(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, recipeNotFound(id)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) ListRecipes(ctx context.Context, skip, limit int) ([]models.Recipe, error) {
	p, err := page(skip, limit)
	if err != nil {
		return nil, err
	}
	recipes, err := store.NewRecipeStore(s.db).List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// UpdateRecipe applies the scalar changes and, when lines are supplied,
// replaces the ingredient set wholesale. Nothing is written unless every
// referenced ingredient exists.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, update RecipeUpdate) (*models.Recipe, error) {
	fields := make(map[string]any, 2)
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, invalidPayload("recipe title must not be empty")
		}
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}

	var lines []models.RecipeIngredient
	if update.Ingredients != nil {
		var err error
		if lines, err = normalizeLines(*update.Ingredients); err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipes := store.NewRecipeStore(tx)

		exists, err := recipes.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get recipe: %w", err)
		}
		if !exists {
			return recipeNotFound(id)
		}

		if update.Ingredients != nil {
			if err := ensureIngredientsExist(ctx, store.NewIngredientStore(tx), lineIDs(lines)); err != nil {
				return err
			}
			if err := recipes.ReplaceLines(ctx, id, lines); err != nil {
				return fmt.Errorf("failed to replace recipe ingredients: %w", err)
			}
		}

		if err := recipes.UpdateFields(ctx, id, fields); err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes the recipe and its lines. Ingredients are untouched.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if err := store.NewRecipeStore(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return recipeNotFound(id)
		}
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// normalizeLines trims units and rejects lines the schema would refuse.
func normalizeLines(in []RecipeLine) ([]models.RecipeIngredient, error) {
	lines := make([]models.RecipeIngredient, 0, len(in))
	seen := make(map[uint]bool, len(in))
	for _, line := range in {
		if line.IngredientID == 0 {
			return nil, invalidPayload("ingredient_id is required")
		}
		if seen[line.IngredientID] {
			return nil, invalidPayload("ingredient %d is listed more than once", line.IngredientID)
		}
		seen[line.IngredientID] = true

		if line.Quantity <= 0 {
			return nil, invalidPayload("quantity for ingredient %d must be greater than zero", line.IngredientID)
		}
		unit := strings.TrimSpace(line.Unit)
		if unit == "" || len([]rune(unit)) > MaxUnitLength {
			return nil, invalidPayload("unit for ingredient %d must be 1 to %d characters", line.IngredientID, MaxUnitLength)
		}

		lines = append(lines, models.RecipeIngredient{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         unit,
		})
	}
	return lines, nil
}

func lineIDs(lines []models.RecipeIngredient) []uint {
	ids := make([]uint, len(lines))
	for i, line := range lines {
		ids[i] = line.IngredientID
	}
	return ids
}
