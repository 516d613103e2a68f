package entity

import "time"

// Tipos de alerta derivada.
const (
	AlertTypeLowStock      = "low_stock"
	AlertTypeExpiring      = "expiring"
	AlertTypeDeliveryDelay = "delivery_delay"
	AlertTypeQualityIssue  = "quality_issue" // reservado: sin regla de derivación automática
)

// Severidades de alerta, de mayor a menor: error > warning > info.
const (
	AlertSeverityError   = "error"
	AlertSeverityWarning = "warning"
	AlertSeverityInfo    = "info"
)

// Alert es un valor derivado, nunca persistido: cada evaluación recalcula
// el conjunto completo. Su identidad efectiva es (Type, IngredientID|OrderID),
// lo que garantiza como máximo una alerta por condición y entidad.
type Alert struct {
	Type           string
	Title          string
	Message        string
	Severity       string
	Timestamp      time.Time
	IngredientID   *int64
	OrderID        *int64
	ActionRequired bool
}
