package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = `id, name, description, unit, min_stock, max_stock, current_stock, unit_price, expiry_date, created_at, updated_at`

// IngredientRepo implementación del puerto IngredientRepository sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de persistencia para ingredientes. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un nuevo ingrediente y asigna su ID.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (name, description, unit, min_stock, max_stock, current_stock, unit_price, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ing.Name, ing.Description, ing.Unit, ing.MinStock, ing.MaxStock,
		ing.CurrentStock, ing.UnitPrice, ing.ExpiryDate, ing.CreatedAt, ing.UpdatedAt,
	).Scan(&ing.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente por ID. Devuelve (nil, nil) si no existe.
func (r *IngredientRepo) GetByID(id int64) (*entity.Ingredient, error) {
	return r.get(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id)
}

// GetForUpdate obtiene el ingrediente bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *IngredientRepo) GetForUpdate(id int64) (*entity.Ingredient, error) {
	return r.get(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1 FOR UPDATE`, id)
}

func (r *IngredientRepo) get(query string, id int64) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ing.ID, &ing.Name, &ing.Description, &ing.Unit, &ing.MinStock, &ing.MaxStock,
		&ing.CurrentStock, &ing.UnitPrice, &ing.ExpiryDate, &ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &ing, nil
}

// Update actualiza los metadatos del ingrediente. El stock se toca solo vía UpdateStock.
func (r *IngredientRepo) Update(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients SET name = $2, description = $3, unit = $4, min_stock = $5, max_stock = $6, unit_price = $7, expiry_date = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Description, ing.Unit, ing.MinStock, ing.MaxStock,
		ing.UnitPrice, ing.ExpiryDate, ing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ingredient: %w", err)
	}
	return nil
}

// UpdateStock escribe el stock derivado del ledger.
func (r *IngredientRepo) UpdateStock(id int64, newStock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ingredients SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	return nil
}

// List lista ingredientes con paginación.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

// ListAll devuelve todos los ingredientes (alertas y dashboard).
func (r *IngredientRepo) ListAll() ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+ingredientColumns+` FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list all ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredients(rows)
}

// Count devuelve el total de ingredientes.
func (r *IngredientRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM ingredients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ingredients: %w", err)
	}
	return n, nil
}

func scanIngredients(rows pgx.Rows) ([]*entity.Ingredient, error) {
	var list []*entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Description, &ing.Unit, &ing.MinStock, &ing.MaxStock,
			&ing.CurrentStock, &ing.UnitPrice, &ing.ExpiryDate, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &ing)
	}
	return list, rows.Err()
}
