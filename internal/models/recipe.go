package models

import "time"

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Author      *Author            `json:"author,omitempty"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is the association row "recipe uses ingredient in this
// amount". It is keyed by (recipe_id, ingredient_id).
type RecipeIngredient struct {
	RecipeID     uint    `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID uint    `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Unit         string  `gorm:"size:10;not null" json:"unit"`

	// Ingredients in use cannot be removed; the service layer reports this
	// before the database constraint is hit.
	Ingredient *Ingredient `gorm:"constraint:OnDelete:RESTRICT" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
