package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineInput línea para crear una orden de compra.
type OrderLineInput struct {
	IngredientID int64           `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden (estado inicial pending).
type CreateOrderRequest struct {
	SupplierID       int64            `json:"supplier_id"`
	SectorID         *int64           `json:"sector_id,omitempty"`
	OrderDate        *time.Time       `json:"order_date,omitempty"` // omitido = hoy
	ExpectedDelivery *time.Time       `json:"expected_delivery,omitempty"`
	Lines            []OrderLineInput `json:"lines"`
}

// OrderLineEdit edición de una línea existente. Solo las líneas cuyos
// valores difieren de los persistidos se escriben (actualización parcial).
type OrderLineEdit struct {
	LineID    int64           `json:"line_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateOrderRequest guarda la edición de una orden: líneas sucias y/o
// cambio de estado (validado contra la máquina de transiciones).
type UpdateOrderRequest struct {
	Status *string         `json:"status,omitempty"`
	Lines  []OrderLineEdit `json:"lines,omitempty"`
}

// UpdateStatusRequest cambio de estado puntual de una orden.
// ReceiveStock marca que, al pasar a delivered, se registren los
// movimientos de entrada de cada línea en la misma transacción.
type UpdateStatusRequest struct {
	Status       string `json:"status"`
	ReceiveStock bool   `json:"receive_stock,omitempty"`
}

// OrderLineResponse línea con su total calculado en vivo.
type OrderLineResponse struct {
	ID           int64           `json:"id"`
	IngredientID int64           `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// OrderResponse orden con líneas y total recalculado (nunca cacheado).
type OrderResponse struct {
	ID               int64               `json:"id"`
	OrderDate        time.Time           `json:"order_date"`
	SupplierID       int64               `json:"supplier_id"`
	SectorID         *int64              `json:"sector_id,omitempty"`
	Status           string              `json:"status"`
	ExpectedDelivery *time.Time          `json:"expected_delivery,omitempty"`
	Lines            []OrderLineResponse `json:"lines"`
	Total            decimal.Decimal     `json:"total"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
