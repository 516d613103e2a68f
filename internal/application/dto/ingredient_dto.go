package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest entrada para crear un ingrediente. InitialStock
// se registra como movimiento de apertura del ledger, no como un campo
// suelto de la fila.
type CreateIngredientRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Description  string           `json:"description"`
	Unit         string           `json:"unit"` // "kg", "L", "unidades"...
	MinStock     decimal.Decimal  `json:"min_stock"`
	MaxStock     decimal.Decimal  `json:"max_stock"`
	InitialStock decimal.Decimal  `json:"initial_stock"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
}

// UpdateIngredientRequest entrada para editar metadatos. El stock actual
// no es editable directamente: solo cambia vía movimientos.
type UpdateIngredientRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	MinStock    *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock    *decimal.Decimal `json:"max_stock,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	ExpiryDate  *time.Time       `json:"expiry_date,omitempty"`
}

// IngredientResponse salida de un ingrediente con su clasificación de stock.
type IngredientResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Unit         string           `json:"unit"`
	MinStock     decimal.Decimal  `json:"min_stock"`
	MaxStock     decimal.Decimal  `json:"max_stock"`
	CurrentStock decimal.Decimal  `json:"current_stock"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	ExpiryDate   *time.Time       `json:"expiry_date,omitempty"`
	StockLevel   string           `json:"stock_level"` // critical | low | normal
	LowStock     bool             `json:"low_stock"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// IngredientListResponse lista paginada de ingredientes.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ReconcileResponse resultado de reconciliar el stock materializado contra
// el replay completo del ledger.
type ReconcileResponse struct {
	IngredientID int64           `json:"ingredient_id"`
	StoredStock  decimal.Decimal `json:"stored_stock"`
	ReplayStock  decimal.Decimal `json:"replay_stock"`
	Drift        decimal.Decimal `json:"drift"` // stored - replay
	Consistent   bool            `json:"consistent"`
	Repaired     bool            `json:"repaired"`
	Movements    int             `json:"movements"`
}
