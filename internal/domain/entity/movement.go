package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock. Los valores son los del esquema original
// del restaurante y viajan tal cual por la API.
const (
	MovementTypeEntrada = "entrada" // entrada de mercancía
	MovementTypeSaida   = "saida"   // salida / consumo
	MovementTypeAjuste  = "ajuste"  // ajuste manual, signo libre
)

// ValidMovementType indica si el tipo pertenece al conjunto cerrado.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrada, MovementTypeSaida, MovementTypeAjuste:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del ledger de un ingrediente.
// El ID (bigserial) define el orden total del ledger: los movimientos se
// aplican siempre en orden de ID ascendente, incluso si las fechas no
// coinciden. Quantity se guarda firmada: negativa para saida, positiva
// para entrada; en ajuste el signo lo aporta el caller.
type StockMovement struct {
	ID           int64
	IngredientID int64
	SectorID     *int64
	BatchID      string // UUID que agrupa movimientos creados en la misma operación
	Date         time.Time
	Type         string // entrada, saida, ajuste
	Quantity     decimal.Decimal
	Origin       string // texto libre: "Compra", "Produção", "estoque inicial"...
	CreatedAt    time.Time
	CreatedBy    string // UserID
}
