package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// LineTotal devuelve cantidad × precio unitario de una línea.
// Asume entradas no negativas: la frontera de entrada (DTO/usecase)
// rechaza cantidades o precios negativos antes de llegar aquí.
func LineTotal(line entity.OrderLine) decimal.Decimal {
	return line.Quantity.Mul(line.UnitPrice)
}

// OrderTotal suma los totales de línea de la orden. Se recalcula en cada
// edición de línea y en cada lectura: nunca se sirve un total cacheado.
func OrderTotal(order *entity.PurchaseOrder) decimal.Decimal {
	total := decimal.Zero
	for _, line := range order.Lines {
		total = total.Add(LineTotal(line))
	}
	return total
}
