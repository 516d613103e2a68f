package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity es la magnitud positiva para entrada/saida (el sistema aplica
// el signo) y el delta firmado para ajuste.
type RegisterMovementRequest struct {
	IngredientID int64           `json:"ingredient_id"`
	SectorID     *int64          `json:"sector_id,omitempty"`
	Type         string          `json:"type"` // entrada | saida | ajuste
	Quantity     decimal.Decimal `json:"quantity"`
	Origin       string          `json:"origin,omitempty"`
	Date         *time.Time      `json:"date,omitempty"` // omitido = hoy
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID           int64           `json:"id"`
	IngredientID int64           `json:"ingredient_id"`
	SectorID     *int64          `json:"sector_id,omitempty"`
	BatchID      string          `json:"batch_id"`
	Date         time.Time       `json:"date"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"` // firmada
	Origin       string          `json:"origin,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RegisterMovementResponse respuesta de registro: el movimiento creado y
// el stock derivado resultante.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	NewStock decimal.Decimal  `json:"new_stock"`
}

// MovementListResponse historial de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
