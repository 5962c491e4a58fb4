package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipe-catalog/backend/internal/models"
)

const gormAssociations = clause.Associations

// RecipeStore reads and writes recipes and their ingredient lines.
type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// withDetails preloads the author and every line's ingredient. The ingredient
// preload is a single IN query over the ids the loaded lines reference.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredient_id")
		}).
		Preload("Ingredients.Ingredient")
}

// Create inserts the recipe row and its lines. Callers wanting atomicity run
// it inside a transaction.
func (s *RecipeStore) Create(ctx context.Context, recipe *models.Recipe, lines []models.RecipeIngredient) error {
	db := s.db.WithContext(ctx)
	if err := db.Omit(gormAssociations).Create(recipe).Error; err != nil {
		return translate(err)
	}
	return s.insertLines(db, recipe.ID, lines)
}

func (s *RecipeStore) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := withDetails(s.db.WithContext(ctx)).First(&recipe, id).Error; err != nil {
		return nil, translate(err)
	}
	return &recipe, nil
}

// Exists reports whether a recipe row with id is present.
func (s *RecipeStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *RecipeStore) List(ctx context.Context, page Page) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := withDetails(page.apply(s.db.WithContext(ctx))).Find(&recipes).Error; err != nil {
		return nil, translate(err)
	}
	return recipes, nil
}

// UpdateFields writes only the given recipe columns.
func (s *RecipeStore) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return translate(s.db.WithContext(ctx).Model(&models.Recipe{ID: id}).Updates(fields).Error)
}

// ReplaceLines clears the recipe's ingredient lines and inserts lines in their place.
func (s *RecipeStore) ReplaceLines(ctx context.Context, recipeID uint, lines []models.RecipeIngredient) error {
	db := s.db.WithContext(ctx)
	if err := db.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return translate(err)
	}
	return s.insertLines(db, recipeID, lines)
}

// Delete removes the recipe and its ingredient lines.
func (s *RecipeStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return translate(err)
		}
		result := tx.Delete(&models.Recipe{}, id)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CountLines returns how many ingredient lines reference the recipe.
func (s *RecipeStore) CountLines(ctx context.Context, recipeID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.RecipeIngredient{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, translate(err)
}

func (s *RecipeStore) insertLines(db *gorm.DB, recipeID uint, lines []models.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([]models.RecipeIngredient, len(lines))
	for i, line := range lines {
		rows[i] = models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
	}
	return translate(db.Omit(gormAssociations).Create(&rows).Error)
}
