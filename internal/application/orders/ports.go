package orders

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de órdenes y de stock atados a esa tx. Lo usan el guardado
// parcial de líneas y la recepción de stock al entregar (orden + ledger
// en la misma unidad atómica).
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error) error
}
