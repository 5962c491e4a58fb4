package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-catalog/backend/internal/service"
	"github.com/pageza/recipe-catalog/backend/internal/types"
)

type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, writes ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		collection(recipes, http.MethodGet, h.ListRecipes)
		collection(recipes, http.MethodPost, withWrites(writes, h.CreateRecipe)...)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", withWrites(writes, h.UpdateRecipe)...)
		recipes.DELETE("/:id", withWrites(writes, h.DeleteRecipe)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), p.Skip, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeListResponse(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	recipe, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), service.RecipeInput{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    req.AuthorID,
		Ingredients: toRecipeLines(req.Ingredients),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	update := service.RecipeUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Ingredients != nil {
		lines := toRecipeLines(*req.Ingredients)
		update.Ingredients = &lines
	}

	recipe, err := h.recipes.UpdateRecipe(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "recipe")
	if !ok {
		return
	}
	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toRecipeLines(in []types.IngredientLine) []service.RecipeLine {
	lines := make([]service.RecipeLine, len(in))
	for i, l := range in {
		lines[i] = service.RecipeLine{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		}
	}
	return lines
}
