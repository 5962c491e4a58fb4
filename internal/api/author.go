package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-catalog/backend/internal/service"
	"github.com/pageza/recipe-catalog/backend/internal/types"
)

type AuthorHandler struct {
	authors service.IAuthorService
}

func NewAuthorHandler(authors service.IAuthorService) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// RegisterRoutes mounts the author endpoints. writes run before every
// mutating handler.
func (h *AuthorHandler) RegisterRoutes(router *gin.RouterGroup, writes ...gin.HandlerFunc) {
	authors := router.Group("/authors")
	{
		collection(authors, http.MethodGet, h.ListAuthors)
		collection(authors, http.MethodPost, withWrites(writes, h.CreateAuthors)...)
		authors.GET("/:id", h.GetAuthor)
		authors.PUT("/:id", withWrites(writes, h.UpdateAuthor)...)
		authors.DELETE("/:id", withWrites(writes, h.DeleteAuthor)...)
	}
}

// CreateAuthors accepts a JSON array and creates every author in it or none.
func (h *AuthorHandler) CreateAuthors(c *gin.Context) {
	var req []types.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	items := make([]service.AuthorInput, len(req))
	for i, r := range req {
		items[i] = service.AuthorInput{Name: r.Name, Email: r.Email}
	}

	authors, err := h.authors.CreateAuthorsBatch(c.Request.Context(), items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authors)
}

func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := parseID(c, "author")
	if !ok {
		return
	}
	author, err := h.authors.GetAuthor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	p, ok := bindPagination(c)
	if !ok {
		return
	}
	authors, err := h.authors.ListAuthors(c.Request.Context(), p.Skip, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c, "author")
	if !ok {
		return
	}
	var req types.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	author, err := h.authors.UpdateAuthor(c.Request.Context(), id, service.AuthorUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, author)
}

func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c, "author")
	if !ok {
		return
	}
	if err := h.authors.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
