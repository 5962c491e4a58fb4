package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/backend/internal/models"
	"github.com/pageza/recipe-catalog/backend/internal/testhelpers"
)

func TestCreateIngredient(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	flour, err := svc.CreateIngredient(ctx, "Flour")
	require.NoError(t, err)
	assert.NotZero(t, flour.ID)

	_, err = svc.CreateIngredient(ctx, "Flour")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), "Flour")

	_, err = svc.CreateIngredient(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidPayload)

	assert.Equal(t, int64(1), testhelpers.Count(t, db, &models.Ingredient{}))
}

func TestGetAndListIngredients(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	flour := testhelpers.CreateIngredient(t, db, "Flour")
	testhelpers.CreateIngredient(t, db, "Eggs")

	got, err := svc.GetIngredient(ctx, flour.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flour", got.Name)

	_, err = svc.GetIngredient(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.ListIngredients(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Flour", list[0].Name)
	assert.Equal(t, "Eggs", list[1].Name)

	_, err = svc.ListIngredients(ctx, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDeleteIngredientInUse(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewIngredientService(db)
	recipes := NewRecipeService(db)
	ctx := context.Background()

	author := testhelpers.CreateAuthor(t, db, "Juan", "juan@x.com")
	flour := testhelpers.CreateIngredient(t, db, "Flour")
	bread := testhelpers.CreateRecipe(t, db, author.ID, "Bread",
		models.RecipeIngredient{IngredientID: flour.ID, Quantity: 500, Unit: "g"})

	err := svc.DeleteIngredient(ctx, flour.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInUse)
	assert.Equal(t, CodeInUse, CodeOf(err))

	_, err = svc.GetIngredient(ctx, flour.ID)
	require.NoError(t, err)

	empty := []RecipeLine{}
	_, err = recipes.UpdateRecipe(ctx, bread.ID, RecipeUpdate{Ingredients: &empty})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteIngredient(ctx, flour.ID))
	_, err = svc.GetIngredient(ctx, flour.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIngredientNotFound(t *testing.T) {
	svc := NewIngredientService(testhelpers.SetupTestDatabase(t))

	err := svc.DeleteIngredient(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
