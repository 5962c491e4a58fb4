package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/backend/internal/models"
	"github.com/pageza/recipe-catalog/backend/internal/service"
	"github.com/pageza/recipe-catalog/backend/internal/store"
	"github.com/pageza/recipe-catalog/backend/internal/testhelpers"
)

func TestCatalogOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	ctx := context.Background()

	authors := service.NewAuthorService(db)
	ingredients := service.NewIngredientService(db)
	recipes := service.NewRecipeService(db)

	created, err := authors.CreateAuthorsBatch(ctx, []service.AuthorInput{
		{Name: "Juan", Email: "juan@x.com"},
		{Name: "Ana", Email: "ana@x.com"},
	})
	require.NoError(t, err)
	juan := created[0]

	flour, err := ingredients.CreateIngredient(ctx, "Flour")
	require.NoError(t, err)
	eggs, err := ingredients.CreateIngredient(ctx, "Eggs")
	require.NoError(t, err)

	bread, err := recipes.CreateRecipe(ctx, service.RecipeInput{
		Title:    "Bread",
		AuthorID: juan.ID,
		Ingredients: []service.RecipeLine{
			{IngredientID: flour.ID, Quantity: 500, Unit: "g"},
		},
	})
	require.NoError(t, err)
	require.Len(t, bread.Ingredients, 1)
	assert.Equal(t, "Flour", bread.Ingredients[0].Ingredient.Name)

	omelette, err := recipes.CreateRecipe(ctx, service.RecipeInput{
		Title:    "Omelette",
		AuthorID: juan.ID,
		Ingredients: []service.RecipeLine{
			{IngredientID: eggs.ID, Quantity: 3, Unit: "pcs"},
		},
	})
	require.NoError(t, err)

	_, err = recipes.CreateRecipe(ctx, service.RecipeInput{
		Title:       "Broken",
		AuthorID:    juan.ID,
		Ingredients: []service.RecipeLine{{IngredientID: 999, Quantity: 1, Unit: "g"}},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.ErrorIs(t, ingredients.DeleteIngredient(ctx, flour.ID), service.ErrInUse)

	require.NoError(t, authors.DeleteAuthor(ctx, juan.ID))
	for _, id := range []uint{bread.ID, omelette.ID} {
		_, err := recipes.GetRecipe(ctx, id)
		assert.ErrorIs(t, err, service.ErrNotFound)
	}
	assert.Equal(t, int64(0), testhelpers.Count(t, db, &models.RecipeIngredient{}))

	require.NoError(t, ingredients.DeleteIngredient(ctx, flour.ID))
}

func TestUniqueViolationSurfacesAsDuplicate(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)
	ctx := context.Background()

	// Bypass the service pre-check to simulate losing a create race.
	authors := store.NewAuthorStore(db)
	require.NoError(t, authors.Create(ctx, &models.Author{Name: "A", Email: "race@x.com"}))
	err := authors.Create(ctx, &models.Author{Name: "B", Email: "race@x.com"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestDatabaseCascadesOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)

	author := testhelpers.CreateAuthor(t, db, "Juan", "juan@x.com")
	flour := testhelpers.CreateIngredient(t, db, "Flour")
	testhelpers.CreateRecipe(t, db, author.ID, "Bread",
		models.RecipeIngredient{IngredientID: flour.ID, Quantity: 500, Unit: "g"})

	// Deleting the author row directly relies on ON DELETE CASCADE.
	require.NoError(t, db.Exec("DELETE FROM authors WHERE id = ?", author.ID).Error)
	assert.Equal(t, int64(0), testhelpers.Count(t, db, &models.Recipe{}))
	assert.Equal(t, int64(0), testhelpers.Count(t, db, &models.RecipeIngredient{}))

	err := db.Exec("INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit) VALUES (1, ?, 0, 'g')", flour.ID).Error
	assert.Error(t, err)
}
