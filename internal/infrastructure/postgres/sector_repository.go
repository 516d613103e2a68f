package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.SectorRepository = (*SectorRepo)(nil)

// SectorRepo implementación del puerto SectorRepository sobre PostgreSQL.
type SectorRepo struct {
	q Querier
}

// NewSectorRepository construye el adaptador de persistencia para setores.
func NewSectorRepository(q Querier) *SectorRepo {
	return &SectorRepo{q: q}
}

// Create persiste un setor y asigna su ID.
func (r *SectorRepo) Create(s *entity.Sector) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO sectors (name) VALUES ($1) RETURNING id`, s.Name,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sector: %w", err)
	}
	return nil
}

// GetByID obtiene un setor por ID. Devuelve (nil, nil) si no existe.
func (r *SectorRepo) GetByID(id int64) (*entity.Sector, error) {
	var s entity.Sector
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM sectors WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	return &s, nil
}

// List devuelve todos los setores.
func (r *SectorRepo) List() ([]*entity.Sector, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM sectors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sector
	for rows.Next() {
		var s entity.Sector
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
