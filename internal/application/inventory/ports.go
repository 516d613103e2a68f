package inventory

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la inserción del movimiento
// y la actualización del stock derivado sean una sola unidad atómica
// (leer stock → aplicar → escribir movimiento + stock), cerrando la
// ventana de lost-update entre registros concurrentes sobre el mismo
// ingrediente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error) error
}
