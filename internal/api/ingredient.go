package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-catalog/backend/internal/service"
	"github.com/pageza/recipe-catalog/backend/internal/types"
)

type IngredientHandler struct {
	ingredients service.IIngredientService
}

func NewIngredientHandler(ingredients service.IIngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup, writes ...gin.HandlerFunc) {
	ingredients := router.Group("/ingredients")
	{
		collection(ingredients, http.MethodGet, h.ListIngredients)
		collection(ingredients, http.MethodPost, withWrites(writes, h.CreateIngredient)...)
		ingredients.GET("/:id", h.GetIngredient)
		ingredients.DELETE("/:id", withWrites(writes, h.DeleteIngredient)...)
	}
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req types.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ingredient, err := h.ingredients.CreateIngredient(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c, "ingredient")
	if !ok {
		return
	}
	ingredient, err := h.ingredients.GetIngredient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}
	ingredients, err := h.ingredients.ListIngredients(c.Request.Context(), p.Skip, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// DeleteIngredient refuses with 409 while any recipe still uses the ingredient.
func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c, "ingredient")
	if !ok {
		return
	}
	if err := h.ingredients.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
