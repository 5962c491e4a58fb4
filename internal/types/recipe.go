package types

import (
	"time"

	"github.com/pageza/recipe-catalog/backend/internal/models"
)

// AuthorSummary is the author block embedded in a recipe response
type AuthorSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RecipeIngredientResponse is one ingredient line enriched with the ingredient's name
type RecipeIngredientResponse struct {
	IngredientID   uint    `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
}

// RecipeResponse is the representation returned by every recipe endpoint
type RecipeResponse struct {
	ID          uint                       `json:"id"`
	Title       string                     `json:"title"`
	Description *string                    `json:"description"`
	AuthorID    uint                       `json:"author_id"`
	CreatedAt   time.Time                  `json:"created_at"`
	Author      *AuthorSummary             `json:"author"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
}

// NewRecipeResponse builds the response from a recipe loaded with its author
// and ingredient lines.
func NewRecipeResponse(recipe *models.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		AuthorID:    recipe.AuthorID,
		CreatedAt:   recipe.CreatedAt,
		Ingredients: make([]RecipeIngredientResponse, 0, len(recipe.Ingredients)),
	}
	if recipe.Author != nil {
		resp.Author = &AuthorSummary{
			ID:    recipe.Author.ID,
			Name:  recipe.Author.Name,
			Email: recipe.Author.Email,
		}
	}
	for _, line := range recipe.Ingredients {
		item := RecipeIngredientResponse{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
		if line.Ingredient != nil {
			item.IngredientName = line.Ingredient.Name
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}
	return resp
}

// NewRecipeListResponse converts a page of recipes
func NewRecipeListResponse(recipes []models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, NewRecipeResponse(&recipes[i]))
	}
	return out
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
