package service

import "github.com/pageza/recipe-catalog/backend/internal/store"

const (
	// DefaultPageSize is used when a list call passes limit 0.
	DefaultPageSize = 100
	// MaxPageSize bounds a single list page.
	MaxPageSize = 500
)

func page(skip, limit int) (store.Page, error) {
	if skip < 0 {
		return store.Page{}, invalidPayload("skip must be zero or greater, got %d", skip)
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 1 || limit > MaxPageSize {
		return store.Page{}, invalidPayload("limit must be between 1 and %d, got %d", MaxPageSize, limit)
	}
	return store.Page{Skip: skip, Limit: limit}, nil
}
