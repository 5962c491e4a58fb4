package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/internal/models"
	"github.com/pageza/recipe-catalog/backend/internal/service"
	"github.com/pageza/recipe-catalog/backend/internal/testhelpers"
	"github.com/pageza/recipe-catalog/backend/internal/types"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	router := gin.New()
	router.RedirectTrailingSlash = false

	root := router.Group("")
	NewSystemHandler(db).RegisterRoutes(root)
	NewAuthorHandler(service.NewAuthorService(db)).RegisterRoutes(root)
	NewIngredientHandler(service.NewIngredientService(db)).RegisterRoutes(root)
	NewRecipeHandler(service.NewRecipeService(db)).RegisterRoutes(root)
	return router, db
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthAndVersion(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"`+Version+`"}`, w.Body.String())
}

func TestHealthReportsUnavailableDatabase(t *testing.T) {
	router, db := setupTestRouter(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(service.CodeNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(service.CodeAlreadyExists))
	assert.Equal(t, http.StatusConflict, statusFor(service.CodeInUse))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.CodeInvalidPayload))
	assert.Equal(t, http.StatusInternalServerError, statusFor(""))
}

func TestScenarioBreadRecipe(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/authors/", []types.CreateAuthorRequest{
		{Name: "Juan", Email: "juan@x.com"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	authors := decode[[]models.Author](t, w)
	require.Len(t, authors, 1)

	w = doRequest(t, router, http.MethodPost, "/ingredients/", types.CreateIngredientRequest{Name: "Flour"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	flour := decode[models.Ingredient](t, w)

	w = doRequest(t, router, http.MethodPost, "/recipes/", types.CreateRecipeRequest{
		Title:    "Bread",
		AuthorID: authors[0].ID,
		Ingredients: []types.IngredientLine{
			{IngredientID: flour.ID, Quantity: 500, Unit: "g"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	recipe := decode[types.RecipeResponse](t, w)
	assert.Equal(t, "Bread", recipe.Title)
	require.NotNil(t, recipe.Author)
	assert.Equal(t, "Juan", recipe.Author.Name)
	assert.Equal(t, "juan@x.com", recipe.Author.Email)
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, types.RecipeIngredientResponse{
		IngredientID:   flour.ID,
		IngredientName: "Flour",
		Quantity:       500,
		Unit:           "g",
	}, recipe.Ingredients[0])
}
