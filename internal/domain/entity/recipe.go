package entity

import "github.com/shopspring/decimal"

// RecipeIngredient es un requisito de ingrediente de una receta
// (solo lectura/costeo; no consume stock).
type RecipeIngredient struct {
	ID           int64
	RecipeID     int64
	IngredientID int64
	Quantity     decimal.Decimal // cantidad necesaria
}

// Recipe representa una receta del menú. Dueña de sus requisitos.
type Recipe struct {
	ID          int64
	Name        string
	Description string
	Items       []RecipeIngredient
}
