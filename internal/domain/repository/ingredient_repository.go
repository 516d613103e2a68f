package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para ingredientes.
// Los ingredientes nunca se borran físicamente (ciclo de vida blando).
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id int64) (*entity.Ingredient, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para que la
	// inserción del movimiento y la actualización del stock derivado
	// ocurran como una sola unidad frente a escritores concurrentes.
	GetForUpdate(id int64) (*entity.Ingredient, error)
	Update(ingredient *entity.Ingredient) error
	UpdateStock(id int64, newStock decimal.Decimal) error
	List(limit, offset int) ([]*entity.Ingredient, error)
	ListAll() ([]*entity.Ingredient, error)
	Count() (int, error)
}
