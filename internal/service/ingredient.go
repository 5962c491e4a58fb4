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

// IngredientService enforces ingredient business rules
type IngredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidPayload("ingredient name is required")
	}

	ingredients := store.NewIngredientStore(s.db)
	if _, err := ingredients.GetByName(ctx, name); err == nil {
		return nil, ingredientNameExists(name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check ingredient name: %w", err)
	}

	ingredient := &models.Ingredient{Name: name}
	if err := ingredients.Create(ctx, ingredient); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ingredientNameExists(name)
		}
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *IngredientService) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	ingredient, err := store.NewIngredientStore(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ingredientNotFound(id)
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	return ingredient, nil
}

func (s *IngredientService) ListIngredients(ctx context.Context, skip, limit int) ([]models.Ingredient, error) {
	p, err := page(skip, limit)
	if err != nil {
		return nil, err
	}
	ingredients, err := store.NewIngredientStore(s.db).List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// DeleteIngredient removes an ingredient that no recipe references. There is
// no forced variant.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uint) error {
	ingredients := store.NewIngredientStore(s.db)

	if _, err := ingredients.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ingredientNotFound(id)
		}
		return fmt.Errorf("failed to get ingredient: %w", err)
	}

	inUse, err := ingredients.InUse(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check ingredient usage: %w", err)
	}
	if inUse {
		return ingredientInUse(id)
	}

	if err := ingredients.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrReferenced):
			return ingredientInUse(id)
		case errors.Is(err, store.ErrNotFound):
			return ingredientNotFound(id)
		}
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

// ensureIngredientsExist reports the first id in input order that has no row.
func ensureIngredientsExist(ctx context.Context, ingredients *store.IngredientStore, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := ingredients.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to check ingredients: %w", err)
	}
	for _, id := range ids {
		if !found[id] {
			return ingredientNotFound(id)
		}
	}
	return nil
}
