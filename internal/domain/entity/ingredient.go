package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient representa un ingrediente de cocina con su stock actual.
// CurrentStock es un valor derivado del historial de movimientos (ver
// internal/domain/ledger); se materializa en la tabla para consultas rápidas
// y nunca se muestra negativo.
type Ingredient struct {
	ID           int64
	Name         string
	Description  string
	Unit         string           // unidad de medida libre: "kg", "L", "unidades"...
	MinStock     decimal.Decimal  // umbral mínimo, >= 0
	MaxStock     decimal.Decimal  // umbral máximo informativo (0 = sin máximo)
	CurrentStock decimal.Decimal  // derivado del ledger, clamp en 0
	UnitPrice    *decimal.Decimal // precio unitario opcional, usado en valoración
	ExpiryDate   *time.Time       // fecha de vencimiento opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
