package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/internal/models"
	"github.com/pageza/recipe-catalog/backend/internal/store"
)

// AuthorInput carries the fields needed to create an author.
type AuthorInput struct {
	Name  string
	Email string
}

// AuthorUpdate carries a partial author update; nil fields keep their value.
type AuthorUpdate struct {
	Name  *string
	Email *string
}

// AuthorService enforces author business rules
type AuthorService struct {
	db *gorm.DB
}

// NewAuthorService creates a new AuthorService instance
func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{db: db}
}

// CreateAuthor creates a single author with a unique email
func (s *AuthorService) CreateAuthor(ctx context.Context, name, email string) (*models.Author, error) {
	in := AuthorInput{Name: name, Email: email}
	if err := validateAuthorInput(in); err != nil {
		return nil, err
	}

	authors := store.NewAuthorStore(s.db)
	if _, err := authors.GetByEmail(ctx, email); err == nil {
		return nil, authorEmailExists(email)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check author email: %w", err)
	}

	author := &models.Author{Name: name, Email: email}
	if err := authors.Create(ctx, author); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, authorEmailExists(email)
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

// CreateAuthorsBatch creates every author in items or none of them.
func (s *AuthorService) CreateAuthorsBatch(ctx context.Context, items []AuthorInput) ([]models.Author, error) {
	if len(items) == 0 {
		return nil, invalidPayload("at least one author is required")
	}

	seen := make(map[string]bool, len(items))
	emails := make([]string, 0, len(items))
	for _, item := range items {
		if err := validateAuthorInput(item); err != nil {
			return nil, err
		}
		if seen[item.Email] {
			return nil, authorEmailRepeated(item.Email)
		}
		seen[item.Email] = true
		emails = append(emails, item.Email)
	}

	created := make([]models.Author, len(items))
	for i, item := range items {
		created[i] = models.Author{Name: item.Name, Email: item.Email}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authors := store.NewAuthorStore(tx)

		existing, err := authors.FindByEmails(ctx, emails)
		if err != nil {
			return fmt.Errorf("failed to check author emails: %w", err)
		}
		if len(existing) > 0 {
			taken := make(map[string]bool, len(existing))
			for _, a := range existing {
				taken[a.Email] = true
			}
			for _, email := range emails {
				if taken[email] {
					return authorEmailExists(email)
				}
			}
		}

		if err := authors.CreateBatch(ctx, created); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return newError(CodeAlreadyExists, "One or more authors already exist.", map[string]any{"emails": emails})
			}
			return fmt.Errorf("failed to create authors: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetAuthor retrieves an author by ID
func (s *AuthorService) GetAuthor(ctx context.Context, id uint) (*models.Author, error) {
	author, err := store.NewAuthorStore(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, authorNotFound(id)
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return author, nil
}

// ListAuthors returns a page of authors in insertion order
func (s *AuthorService) ListAuthors(ctx context.Context, skip, limit int) ([]models.Author, error) {
	p, err := page(skip, limit)
	if err != nil {
		return nil, err
	}
	authors, err := store.NewAuthorStore(s.db).List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

// UpdateAuthor applies a partial update. Re-submitting the author's own
// email is allowed.
func (s *AuthorService) UpdateAuthor(ctx context.Context, id uint, update AuthorUpdate) (*models.Author, error) {
	authors := store.NewAuthorStore(s.db)

	if _, err := authors.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, authorNotFound(id)
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	fields := make(map[string]any, 2)
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, invalidPayload("author name must not be empty")
		}
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		email := *update.Email
		if strings.TrimSpace(email) == "" {
			return nil, invalidPayload("author email must not be empty")
		}
		duplicate, err := authors.GetByEmail(ctx, email)
		switch {
		case err == nil && duplicate.ID != id:
			return nil, authorEmailExists(email)
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("failed to check author email: %w", err)
		}
		fields["email"] = email
	}

	author, err := authors.Update(ctx, id, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate) && update.Email != nil:
			return nil, authorEmailExists(*update.Email)
		case errors.Is(err, store.ErrNotFound):
			return nil, authorNotFound(id)
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

// DeleteAuthor deletes an author along with its recipes and their lines
func (s *AuthorService) DeleteAuthor(ctx context.Context, id uint) error {
	if err := store.NewAuthorStore(s.db).Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return authorNotFound(id)
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}
	return nil
}

func validateAuthorInput(in AuthorInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidPayload("author name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return invalidPayload("author email is required")
	}
	return nil
}
