package entity

import "time"

// Supplier representa un fornecedor. Es referenciado (nunca poseído) por
// las órdenes de compra.
type Supplier struct {
	ID        int64
	Name      string // requerido, no vacío
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
