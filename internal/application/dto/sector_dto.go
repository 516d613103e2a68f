package dto

// CreateSectorRequest entrada para crear un setor.
type CreateSectorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SectorResponse salida de un setor.
type SectorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
