package dto

import "time"

// CreateSupplierRequest entrada para crear un fornecedor.
type CreateSupplierRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Contact string `json:"contact"`
}

// UpdateSupplierRequest entrada para editar un fornecedor.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Contact *string `json:"contact,omitempty"`
}

// SupplierResponse salida de un fornecedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de fornecedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
