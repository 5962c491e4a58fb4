package types

// CreateAuthorRequest is one element of the POST /authors/ array body
type CreateAuthorRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateAuthorRequest represents the request body for updating an author.
// Omitted fields are left unchanged.
type UpdateAuthorRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// CreateIngredientRequest represents the request body for creating an ingredient
type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required"`
}

// IngredientLine is one ingredient requirement inside a recipe request
type IngredientLine struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"required,max=10"`
}

// CreateRecipeRequest represents the request body for creating a recipe
type CreateRecipeRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description *string          `json:"description"`
	AuthorID    uint             `json:"author_id" binding:"required"`
	Ingredients []IngredientLine `json:"ingredients" binding:"dive"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// A present "ingredients" key replaces the whole ingredient set.
type UpdateRecipeRequest struct {
	Title       *string           `json:"title" binding:"omitempty,min=1"`
	Description *string           `json:"description"`
	Ingredients *[]IngredientLine `json:"ingredients" binding:"omitempty,dive"`
}

// Pagination holds the skip/limit query parameters shared by list endpoints
type Pagination struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=500"`
}
