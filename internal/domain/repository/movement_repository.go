package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger.
// Los movimientos son inmutables: solo inserción y lectura; las
// correcciones son nuevos movimientos de ajuste.
type StockMovementRepository interface {
	// Create inserta el movimiento y asigna su ID (bigserial): el orden
	// de creación es el orden total del ledger.
	Create(movement *entity.StockMovement) error
	// ListByIngredient devuelve el historial completo en orden de ID
	// ascendente, listo para el replay del agregador.
	ListByIngredient(ingredientID int64) ([]*entity.StockMovement, error)
	ListRecent(limit int) ([]*entity.StockMovement, error)
}
