package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// SectorRepository define el puerto de persistencia para setores.
type SectorRepository interface {
	Create(sector *entity.Sector) error
	GetByID(id int64) (*entity.Sector, error)
	List() ([]*entity.Sector, error)
}
