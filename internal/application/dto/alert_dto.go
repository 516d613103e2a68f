package dto

import "time"

// AlertResponse alerta derivada del estado actual: nunca persistida, cada
// evaluación recalcula el conjunto completo.
type AlertResponse struct {
	Type           string    `json:"type"` // low_stock | expiring | delivery_delay | quality_issue
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Severity       string    `json:"severity"` // error | warning | info
	Timestamp      time.Time `json:"timestamp"`
	IngredientID   *int64    `json:"ingredient_id,omitempty"`
	OrderID        *int64    `json:"order_id,omitempty"`
	ActionRequired bool      `json:"action_required"`
}

// AlertListResponse alertas ordenadas por severidad y timestamp.
type AlertListResponse struct {
	Items          []AlertResponse `json:"items"`
	ActionRequired int             `json:"action_required"`
}
