// Package ledger contiene el modelo de dominio del ledger de stock:
// derivación del stock actual desde el historial de movimientos,
// clasificación por umbrales, valoración de órdenes y política de alertas.
// Todas las funciones son puras; la persistencia vive en los repositorios.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// SignedQuantity aplica el signo del tipo de movimiento a la magnitud:
// saida se guarda negativa, entrada positiva; en ajuste el delta firmado
// viene tal cual del caller. Para entrada/saida la magnitud debe ser > 0.
func SignedQuantity(movType string, magnitude decimal.Decimal) (decimal.Decimal, error) {
	switch movType {
	case entity.MovementTypeEntrada:
		if !magnitude.IsPositive() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return magnitude, nil
	case entity.MovementTypeSaida:
		if !magnitude.IsPositive() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return magnitude.Neg(), nil
	case entity.MovementTypeAjuste:
		if magnitude.IsZero() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return magnitude, nil
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// Apply deriva el nuevo stock: max(0, actual + cantidad firmada).
// El clamp en 0 es deliberado: el movimiento se registra con su cantidad
// firmada original para auditoría, pero el stock derivado nunca reporta
// negativo (piso, no rechazo).
func Apply(current, signed decimal.Decimal) decimal.Decimal {
	next := current.Add(signed)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// ApplyMovement aplica un movimiento ya firmado sobre el ingrediente y
// devuelve una copia con el CurrentStock actualizado.
func ApplyMovement(ing entity.Ingredient, mov entity.StockMovement) entity.Ingredient {
	ing.CurrentStock = Apply(ing.CurrentStock, mov.Quantity)
	return ing
}

// RecomputeFromHistory reproduce el ledger completo desde un saldo inicial,
// aplicando el mismo clamp en cada paso. El orden de aplicación es el de
// creación (ID ascendente): el ID es autoritativo aunque las fechas no
// coincidan. Produce el mismo valor final que la aplicación incremental
// secuencial sobre el mismo historial.
func RecomputeFromHistory(opening decimal.Decimal, movements []*entity.StockMovement) decimal.Decimal {
	ordered := make([]*entity.StockMovement, len(movements))
	copy(ordered, movements)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	stock := opening
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	for _, mov := range ordered {
		stock = Apply(stock, mov.Quantity)
	}
	return stock
}
