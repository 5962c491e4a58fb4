package models

// Author writes recipes. Email is unique across all authors.
type Author struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Deleting an author removes the recipes it owns.
	Recipes []Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for the Author model
func (Author) TableName() string {
	return "authors"
}
