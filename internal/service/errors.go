package service

import (
	"errors"
	"fmt"
)

// ErrorCode classifies domain failures. The HTTP layer maps codes to status.
type ErrorCode string

const (
	// CodeNotFound indicates a referenced author, ingredient or recipe does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeAlreadyExists indicates a uniqueness rule (author email, ingredient name) was violated.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// CodeInUse indicates an ingredient is still referenced by a recipe.
	CodeInUse ErrorCode = "IN_USE"
	// CodeInvalidPayload indicates input that passed decoding but breaks a business rule.
	CodeInvalidPayload ErrorCode = "INVALID_PAYLOAD"
)

// Error is the typed error returned by every service operation that fails
// for a domain reason. Message is safe to show to API clients.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so callers can test against
// the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrNotFound       = &Error{Code: CodeNotFound, Message: "not found"}
	ErrAlreadyExists  = &Error{Code: CodeAlreadyExists, Message: "already exists"}
	ErrInUse          = &Error{Code: CodeInUse, Message: "in use"}
	ErrInvalidPayload = &Error{Code: CodeInvalidPayload, Message: "invalid payload"}
)

// CodeOf returns the domain code carried by err, or "" for infrastructure errors.
func CodeOf(err error) ErrorCode {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func newError(code ErrorCode, message string, context map[string]any) *Error {
	return &Error{Code: code, Message: message, Context: context}
}

func authorNotFound(id uint) *Error {
	return newError(CodeNotFound, fmt.Sprintf("Author with ID %d not found.", id), map[string]any{"author_id": id})
}

func authorEmailExists(email string) *Error {
	return newError(CodeAlreadyExists, fmt.Sprintf("Author with email '%s' already exists.", email), map[string]any{"email": email})
}

func authorEmailRepeated(email string) *Error {
	return newError(CodeAlreadyExists, fmt.Sprintf("Author with email '%s' appears more than once in the request.", email), map[string]any{"email": email})
}

func ingredientNotFound(id uint) *Error {
	return newError(CodeNotFound, fmt.Sprintf("Ingredient with ID %d not found.", id), map[string]any{"ingredient_id": id})
}

func ingredientNameExists(name string) *Error {
	return newError(CodeAlreadyExists, fmt.Sprintf("Ingredient with name '%s' already exists.", name), map[string]any{"name": name})
}

func ingredientInUse(id uint) *Error {
	return newError(CodeInUse, fmt.Sprintf("Ingredient with ID %d is used in a recipe and cannot be deleted.", id), map[string]any{"ingredient_id": id})
}

func recipeNotFound(id uint) *Error {
	return newError(CodeNotFound, fmt.Sprintf("Recipe with ID %d not found.", id), map[string]any{"recipe_id": id})
}

func invalidPayload(format string, args ...any) *Error {
	return newError(CodeInvalidPayload, fmt.Sprintf(format, args...), nil)
}
