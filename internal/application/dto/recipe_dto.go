package dto

import "github.com/shopspring/decimal"

// RecipeItemInput requisito de ingrediente de una receta.
type RecipeItemInput struct {
	IngredientID int64           `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateRecipeRequest entrada para crear una receta con sus requisitos.
type CreateRecipeRequest struct {
	Name        string            `json:"name" validate:"required,min=1,max=200"`
	Description string            `json:"description"`
	Items       []RecipeItemInput `json:"items"`
}

// UpdateRecipeRequest entrada para editar una receta. Items == nil deja
// los requisitos como están; una lista (incluso vacía) los reemplaza.
type UpdateRecipeRequest struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string           `json:"description,omitempty"`
	Items       []RecipeItemInput `json:"items,omitempty"`
}

// RecipeItemResponse requisito con su costo estimado (cantidad × precio
// unitario del ingrediente; cero si el ingrediente no tiene precio).
type RecipeItemResponse struct {
	ID            int64           `json:"id"`
	IngredientID  int64           `json:"ingredient_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// RecipeResponse receta con costeo total estimado.
type RecipeResponse struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	Items         []RecipeItemResponse `json:"items"`
	EstimatedCost decimal.Decimal      `json:"estimated_cost"`
}

// RecipeListResponse lista paginada de recetas.
type RecipeListResponse struct {
	Items []RecipeResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
