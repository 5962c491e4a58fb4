package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/internal/models"
)

// AuthorStore reads and writes the authors table.
type AuthorStore struct {
	db *gorm.DB
}

func NewAuthorStore(db *gorm.DB) *AuthorStore {
	return &AuthorStore{db: db}
}

func (s *AuthorStore) Create(ctx context.Context, author *models.Author) error {
	return translate(s.db.WithContext(ctx).Omit(gormAssociations).Create(author).Error)
}

// CreateBatch inserts all authors in one statement.
func (s *AuthorStore) CreateBatch(ctx context.Context, authors []models.Author) error {
	if len(authors) == 0 {
		return nil
	}
	return translate(s.db.WithContext(ctx).Omit(gormAssociations).Create(&authors).Error)
}

func (s *AuthorStore) GetByID(ctx context.Context, id uint) (*models.Author, error) {
	var author models.Author
	if err := s.db.WithContext(ctx).First(&author, id).Error; err != nil {
		return nil, translate(err)
	}
	return &author, nil
}

func (s *AuthorStore) GetByEmail(ctx context.Context, email string) (*models.Author, error) {
	var author models.Author
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&author).Error; err != nil {
		return nil, translate(err)
	}
	return &author, nil
}

// FindByEmails returns the authors whose email is in emails.
func (s *AuthorStore) FindByEmails(ctx context.Context, emails []string) ([]models.Author, error) {
	var authors []models.Author
	if len(emails) == 0 {
		return authors, nil
	}
	if err := s.db.WithContext(ctx).Where("email IN ?", emails).Order("id").Find(&authors).Error; err != nil {
		return nil, translate(err)
	}
	return authors, nil
}

func (s *AuthorStore) List(ctx context.Context, page Page) ([]models.Author, error) {
	authors := []models.Author{}
	if err := page.apply(s.db.WithContext(ctx)).Find(&authors).Error; err != nil {
		return nil, translate(err)
	}
	return authors, nil
}

// Update writes only the given columns and returns the reloaded row.
func (s *AuthorStore) Update(ctx context.Context, id uint, fields map[string]any) (*models.Author, error) {
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&models.Author{ID: id}).Updates(fields).Error; err != nil {
			return nil, translate(err)
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes the author together with its recipes and their ingredient
// lines. Children are removed explicitly so the cascade does not depend on
// the engine enforcing foreign keys.
func (s *AuthorStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.Recipe{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("recipe_id IN (?)", owned).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
			return translate(err)
		}
		result := tx.Delete(&models.Author{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
