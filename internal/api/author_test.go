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

func TestCreateAuthors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "array of two",
			body:       `[{"name":"Juan","email":"juan@x.com"},{"name":"Ana","email":"ana@x.com"}]`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty array",
			body:       `[]`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PAYLOAD",
		},
		{
			name:       "single object is not accepted",
			body:       `{"name":"Juan","email":"juan@x.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PAYLOAD",
		},
		{
			name:       "invalid email",
			body:       `[{"name":"Juan","email":"not-an-email"}]`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PAYLOAD",
		},
		{
			name:       "duplicate within batch",
			body:       `[{"name":"Juan","email":"juan@x.com"},{"name":"J","email":"juan@x.com"}]`,
			wantStatus: http.StatusConflict,
			wantCode:   "ALREADY_EXISTS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, db := setupTestRouter(t)

			w := doRequest(t, router, http.MethodPost, "/authors/", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantCode != "" {
				resp := decode[types.ErrorResponse](t, w)
				assert.Equal(t, tt.wantCode, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.Equal(t, int64(0), testhelpers.Count(t, db, &models.Author{}))
				return
			}
			assert.Len(t, decode[[]models.Author](t, w), 2)
		})
	}
}

func TestCreateAuthorsConflictWithStored(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateAuthor(t, db, "Juan", "juan@x.com")

	w := doRequest(t, router, http.MethodPost, "/authors", `[{"name":"Juan","email":"juan@x.com"}]`)
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode[types.ErrorResponse](t, w)
	assert.Equal(t, "Author with email 'juan@x.com' already exists.", resp.Message)
	assert.Equal(t, int64(1), testhelpers.Count(t, db, &models.Author{}))
}

func TestGetAuthorHandler(t *testing.T) {
	router, db := setupTestRouter(t)
	ana := testhelpers.CreateAuthor(t, db, "Ana", "ana@x.com")

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/authors/%d", ana.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"Ana","email":"ana@x.com"}`, ana.ID), w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/authors/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Author with ID 999 not found.", decode[types.ErrorResponse](t, w).Message)

	w = doRequest(t, router, http.MethodGet, "/authors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAuthorsHandler(t *testing.T) {
	router, db := setupTestRouter(t)
	testhelpers.CreateAuthor(t, db, "A", "a@x.com")
	testhelpers.CreateAuthor(t, db, "B", "b@x.com")

	w := doRequest(t, router, http.MethodGet, "/authors/?skip=0&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[[]models.Author](t, w)

	w = doRequest(t, router, http.MethodGet, "/authors?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[[]models.Author](t, w)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "a@x.com", first[0].Email)
	assert.Equal(t, "b@x.com", second[0].Email)

	w = doRequest(t, router, http.MethodGet, "/authors/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Author](t, w), 2)

	for _, query := range []string{"skip=-1", "limit=0", "limit=501", "limit=abc"} {
		w = doRequest(t, router, http.MethodGet, "/authors/?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestUpdateAuthorHandler(t *testing.T) {
	router, db := setupTestRouter(t)
	juan := testhelpers.CreateAuthor(t, db, "Juan", "juan@x.com")
	testhelpers.CreateAuthor(t, db, "Ana", "ana@x.com")
	path := fmt.Sprintf("/authors/%d", juan.ID)

	w := doRequest(t, router, http.MethodPut, path, `{"name":"Juan P"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[models.Author](t, w)
	assert.Equal(t, "Juan P", got.Name)
	assert.Equal(t, "juan@x.com", got.Email)

	w = doRequest(t, router, http.MethodPut, path, `{"email":"juan@x.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPut, path, `{"email":"ana@x.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodPut, path, `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPut, "/authors/999", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAuthorHandler(t *testing.T) {
	router, db := setupTestRouter(t)
	juan := testhelpers.CreateAuthor(t, db, "Juan", "juan@x.com")
	flour := testhelpers.CreateIngredient(t, db, "Flour")
	first := testhelpers.CreateRecipe(t, db, juan.ID, "Bread",
		models.RecipeIngredient{IngredientID: flour.ID, Quantity: 500, Unit: "g"})
	second := testhelpers.CreateRecipe(t, db, juan.ID, "Rolls",
		models.RecipeIngredient{IngredientID: flour.ID, Quantity: 250, Unit: "g"})

	w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/authors/%d", juan.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	for _, id := range []uint{first.ID, second.ID} {
		w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/recipes/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
	assert.Equal(t, int64(0), testhelpers.Count(t, db, &models.RecipeIngredient{}))

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/authors/%d", juan.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
