package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/backend/internal/models"
	"github.com/pageza/recipe-catalog/backend/internal/testhelpers"
	"github.com/pageza/recipe-catalog/backend/internal/types"
)

func TestCreateIngredientHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/ingredients", `{"name":"Flour"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Flour", decode[models.Ingredient](t, w).Name)

	w = doRequest(t, router, http.MethodPost, "/ingredients/", `{"name":"Flour"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_EXISTS", decode[types.ErrorResponse](t, w).Error)

	w = doRequest(t, router, http.MethodPost, "/ingredients/", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndListIngredientHandlers(t *testing.T) {
	router, db := setupTestRouter(t)
	flour := testhelpers.CreateIngredient(t, db, "Flour")
	testhelpers.CreateIngredient(t, db, "Eggs")

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/ingredients/%d", flour.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"Flour"}`, flour.ID), w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/ingredients/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/ingredients/?limit=1&skip=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Ingredient](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Eggs", list[0].Name)
}

func TestDeleteIngredientHandler(t *testing.T) {
	router, db := setupTestRouter(t)
	author := testhelpers.CreateAuthor(t, db, "Juan", "juan@x.com")
	flour := testhelpers.CreateIngredient(t, db, "Flour")
	salt := testhelpers.CreateIngredient(t, db, "Salt")
	testhelpers.CreateRecipe(t, db, author.ID, "Bread",
		models.RecipeIngredient{IngredientID: flour.ID, Quantity: 500, Unit: "g"})

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/ingredients/%d", flour.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode[types.ErrorResponse](t, w)
	assert.Equal(t, "IN_USE", resp.Error)
	assert.Contains(t, resp.Message, fmt.Sprintf("Ingredient with ID %d", flour.ID))

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/ingredients/%d", salt.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/ingredients/%d", salt.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
