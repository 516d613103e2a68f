package usecase

import (
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// SectorUseCase casos de uso para setores (cozinha, bar, confeitaria...).
type SectorUseCase struct {
	repo repository.SectorRepository
}

// NewSectorUseCase construye el caso de uso.
func NewSectorUseCase(repo repository.SectorRepository) *SectorUseCase {
	return &SectorUseCase{repo: repo}
}

// Create crea un setor.
func (uc *SectorUseCase) Create(in dto.CreateSectorRequest) (*dto.SectorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	sector := &entity.Sector{Name: in.Name}
	if err := uc.repo.Create(sector); err != nil {
		return nil, err
	}
	return &dto.SectorResponse{ID: sector.ID, Name: sector.Name}, nil
}

// List lista todos los setores.
func (uc *SectorUseCase) List() ([]dto.SectorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SectorResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SectorResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}
