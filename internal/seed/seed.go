// Package seed loads a small fixture catalog through the service layer.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/internal/service"
)

//go:embed seed.yaml
var defaultFixture []byte

// Fixture is the YAML document describing the seed catalog. Recipes refer to
// authors by email and to ingredients by name.
type Fixture struct {
	Authors     []FixtureAuthor `yaml:"authors"`
	Ingredients []string        `yaml:"ingredients"`
	Recipes     []FixtureRecipe `yaml:"recipes"`
}

type FixtureAuthor struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type FixtureRecipe struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Author      string        `yaml:"author"`
	Ingredients []FixtureLine `yaml:"ingredients"`
}

type FixtureLine struct {
	Name     string  `yaml:"name"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
}

// Summary counts what a seed run created.
type Summary struct {
	Authors     int
	Ingredients int
	Recipes     int
}

// DefaultFixture parses the embedded catalog.
func DefaultFixture() (*Fixture, error) {
	return Parse(defaultFixture)
}

// Parse decodes a fixture document.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

// Run inserts the fixture in a single transaction. A database that already
// holds any fixture author fails with service.ErrAlreadyExists and is left
// untouched.
func Run(ctx context.Context, db *gorm.DB, f *Fixture) (Summary, error) {
	var summary Summary

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorSvc := service.NewAuthorService(tx)
		ingredientSvc := service.NewIngredientService(tx)
		recipeSvc := service.NewRecipeService(tx)

		inputs := make([]service.AuthorInput, len(f.Authors))
		for i, a := range f.Authors {
			inputs[i] = service.AuthorInput{Name: a.Name, Email: a.Email}
		}
		authors, err := authorSvc.CreateAuthorsBatch(ctx, inputs)
		if err != nil {
			return err
		}
		authorIDs := make(map[string]uint, len(authors))
		for _, a := range authors {
			authorIDs[a.Email] = a.ID
		}

		ingredientIDs := make(map[string]uint, len(f.Ingredients))
		for _, name := range f.Ingredients {
			ingredient, err := ingredientSvc.CreateIngredient(ctx, name)
			if err != nil {
				return err
			}
			ingredientIDs[name] = ingredient.ID
		}

		for _, r := range f.Recipes {
			recipe, err := recipeSvc.CreateRecipe(ctx, toRecipeInput(r, authorIDs, ingredientIDs))
			if err != nil {
				return fmt.Errorf("recipe %q: %w", r.Title, err)
			}
			slog.Debug("seeded recipe", "recipe_id", recipe.ID, "title", recipe.Title)
		}

		summary = Summary{
			Authors:     len(authors),
			Ingredients: len(ingredientIDs),
			Recipes:     len(f.Recipes),
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// toRecipeInput resolves fixture references. Unknown names resolve to id 0,
// which the service rejects.
func toRecipeInput(r FixtureRecipe, authors, ingredients map[string]uint) service.RecipeInput {
	in := service.RecipeInput{
		Title:       r.Title,
		AuthorID:    authors[r.Author],
		Ingredients: make([]service.RecipeLine, len(r.Ingredients)),
	}
	if r.Description != "" {
		desc := r.Description
		in.Description = &desc
	}
	for i, l := range r.Ingredients {
		in.Ingredients[i] = service.RecipeLine{
			IngredientID: ingredients[l.Name],
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		}
	}
	return in
}
