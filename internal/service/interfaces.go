package service

import (
	"context"

	"github.com/pageza/recipe-catalog/backend/internal/models"
)

// IAuthorService defines the author operations exposed to the HTTP layer
type IAuthorService interface {
	CreateAuthor(ctx context.Context, name, email string) (*models.Author, error)
	CreateAuthorsBatch(ctx context.Context, items []AuthorInput) ([]models.Author, error)
	GetAuthor(ctx context.Context, id uint) (*models.Author, error)
	ListAuthors(ctx context.Context, skip, limit int) ([]models.Author, error)
	UpdateAuthor(ctx context.Context, id uint, update AuthorUpdate) (*models.Author, error)
	DeleteAuthor(ctx context.Context, id uint) error
}

// IIngredientService defines the ingredient operations exposed to the HTTP layer
type IIngredientService interface {
	CreateIngredient(ctx context.Context, name string) (*models.Ingredient, error)
	GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error)
	ListIngredients(ctx context.Context, skip, limit int) ([]models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uint) error
}

// IRecipeService defines the recipe operations exposed to the HTTP layer
type IRecipeService interface {
	CreateRecipe(ctx context.Context, in RecipeInput) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, error)
	ListRecipes(ctx context.Context, skip, limit int) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, update RecipeUpdate) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uint) error
}

var (
	_ IAuthorService     = (*AuthorService)(nil)
	_ IIngredientService = (*IngredientService)(nil)
	_ IRecipeService     = (*RecipeService)(nil)
)
