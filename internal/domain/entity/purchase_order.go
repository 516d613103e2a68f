package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra (conjunto cerrado).
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// legalTransitions define la máquina de estados:
// pending -> confirmed -> shipped -> delivered, con cancelled alcanzable
// solo desde pending o confirmed. No hay avance automático.
var legalTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ValidOrderStatus indica si el estado pertenece al conjunto cerrado.
func ValidOrderStatus(s string) bool {
	_, ok := legalTransitions[s]
	return ok
}

// CanTransition indica si el cambio de estado from -> to es legal.
// from == to se acepta (no-op, permite guardar sin cambiar estado).
func CanTransition(from, to string) bool {
	if !ValidOrderStatus(from) || !ValidOrderStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderLine es una línea de la orden: la orden es dueña exclusiva de sus
// líneas. Quantity y UnitPrice son no negativos (validado al construir).
type OrderLine struct {
	ID           int64
	OrderID      int64
	IngredientID int64
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
}

// PurchaseOrder representa una orden de compra a un fornecedor.
// El total nunca se persiste: se recalcula siempre desde las líneas
// (ver ledger.OrderTotal) para que el valor mostrado sea la suma viva.
type PurchaseOrder struct {
	ID               int64
	OrderDate        time.Time
	SupplierID       int64
	SectorID         *int64
	Status           string
	ExpectedDelivery *time.Time
	Lines            []OrderLine
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
