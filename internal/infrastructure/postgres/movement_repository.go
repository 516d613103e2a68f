package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, ingredient_id, sector_id, batch_id, date, type, quantity, origin, created_at, created_by`

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL. La tabla es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta el movimiento y asigna su ID (bigserial): el orden de
// inserción es el orden total del ledger.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (ingredient_id, sector_id, batch_id, date, type, quantity, origin, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.IngredientID, m.SectorID, m.BatchID, m.Date, m.Type, m.Quantity,
		m.Origin, m.CreatedAt, m.CreatedBy,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByIngredient devuelve el historial completo en orden de ID ascendente.
func (r *StockMovementRepo) ListByIngredient(ingredientID int64) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE ingredient_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListRecent devuelve los últimos movimientos registrados (dashboard).
func (r *StockMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements ORDER BY id DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.IngredientID, &m.SectorID, &m.BatchID, &m.Date, &m.Type,
			&m.Quantity, &m.Origin, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
