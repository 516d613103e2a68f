package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleCocina  = "cocina"  // operación de cocina: movimientos de stock
	RoleCompras = "compras" // compras: fornecedores y órdenes
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | cocina | compras
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
