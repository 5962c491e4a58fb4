package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-catalog/backend/internal/service"
	"github.com/pageza/recipe-catalog/backend/internal/types"
)

const codeInternal = "INTERNAL"

// statusFor maps a domain error code to its HTTP status.
func statusFor(code service.ErrorCode) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeAlreadyExists, service.CodeInUse:
		return http.StatusConflict
	case service.CodeInvalidPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Errors without a domain code
// are logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	var domainErr *service.Error
	if errors.As(err, &domainErr) {
		c.JSON(statusFor(domainErr.Code), types.ErrorResponse{
			Error:   string(domainErr.Code),
			Message: domainErr.Message,
		})
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString("request_id"),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, types.ErrorResponse{
		Error:   codeInternal,
		Message: "An internal error occurred.",
	})
}

// respondBindError reports a malformed body or query string.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{
		Error:   string(service.CodeInvalidPayload),
		Message: err.Error(),
	})
}

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c *gin.Context, entity string) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   string(service.CodeInvalidPayload),
			Message: "Invalid " + entity + " ID '" + raw + "'.",
		})
		return 0, false
	}
	return uint(id), true
}

// bindPagination reads skip and limit, applying the list defaults.
func bindPagination(c *gin.Context) (types.Pagination, bool) {
	var p types.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		respondBindError(c, err)
		return p, false
	}
	return p, true
}

// collection registers handlers for both "/name" and "/name/".
func collection(group *gin.RouterGroup, method string, handlers ...gin.HandlerFunc) {
	group.Handle(method, "", handlers...)
	group.Handle(method, "/", handlers...)
}

// withWrites prepends write-only middleware (rate limiting) to a handler chain.
func withWrites(writes []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(writes)+1)
	chain = append(chain, writes...)
	return append(chain, h)
}
