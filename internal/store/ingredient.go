package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/internal/models"
)

// IngredientStore reads and writes the ingredients table.
type IngredientStore struct {
	db *gorm.DB
}

func NewIngredientStore(db *gorm.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

func (s *IngredientStore) Create(ctx context.Context, ingredient *models.Ingredient) error {
	return translate(s.db.WithContext(ctx).Create(ingredient).Error)
}

func (s *IngredientStore) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ingredient, nil
}

func (s *IngredientStore) GetByName(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, translate(err)
	}
	return &ingredient, nil
}

func (s *IngredientStore) List(ctx context.Context, page Page) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	if err := page.apply(s.db.WithContext(ctx)).Find(&ingredients).Error; err != nil {
		return nil, translate(err)
	}
	return ingredients, nil
}

// ExistingIDs returns the subset of ids present in the table.
func (s *IngredientStore) ExistingIDs(ctx context.Context, ids []uint) (map[uint]bool, error) {
	found := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	var rows []uint
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id IN ?", ids).Pluck("id", &rows).Error; err != nil {
		return nil, translate(err)
	}
	for _, id := range rows {
		found[id] = true
	}
	return found, nil
}

// InUse reports whether any recipe line references the ingredient.
func (s *IngredientStore) InUse(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *IngredientStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
