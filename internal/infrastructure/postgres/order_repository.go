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

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_date, supplier_id, sector_id, status, expected_delivery, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// El total nunca se persiste: solo filas de órdenes y de líneas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la orden con sus líneas y asigna los IDs.
func (r *OrderRepo) Create(order *entity.PurchaseOrder) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (order_date, supplier_id, sector_id, status, expected_delivery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.OrderDate, order.SupplierID, order.SectorID, order.Status,
		order.ExpectedDelivery, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		err := r.q.QueryRow(ctx,
			`INSERT INTO order_lines (order_id, ingredient_id, quantity, unit_price) VALUES ($1, $2, $3, $4) RETURNING id`,
			line.OrderID, line.IngredientID, line.Quantity, line.UnitPrice,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la orden con sus líneas cargadas. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila de la orden durante ediciones. Solo dentro de una tx.
func (r *OrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) {
	return r.get(`SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) get(query string, id int64) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&order.ID, &order.OrderDate, &order.SupplierID, &order.SectorID, &order.Status,
		&order.ExpectedDelivery, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadLines(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) loadLines(order *entity.PurchaseOrder) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, order_id, ingredient_id, quantity, unit_price FROM order_lines WHERE order_id = $1 ORDER BY id`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.IngredientID, &line.Quantity, &line.UnitPrice); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	return rows.Err()
}

// UpdateLine persiste cantidad y precio de una línea (solo líneas sucias).
func (r *OrderRepo) UpdateLine(lineID int64, quantity, unitPrice decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE order_lines SET quantity = $2, unit_price = $3 WHERE id = $1`,
		lineID, quantity, unitPrice,
	)
	if err != nil {
		return fmt.Errorf("update order line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddLine agrega una línea a una orden existente.
func (r *OrderRepo) AddLine(line *entity.OrderLine) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO order_lines (order_id, ingredient_id, quantity, unit_price) VALUES ($1, $2, $3, $4) RETURNING id`,
		line.OrderID, line.IngredientID, line.Quantity, line.UnitPrice,
	).Scan(&line.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert order line: %w", err)
	}
	return nil
}

// RemoveLine elimina una línea de la orden.
func (r *OrderRepo) RemoveLine(lineID int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM order_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete order line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus persiste el nuevo estado. La legalidad de la transición se
// valida en el caso de uso, bajo bloqueo de la fila.
func (r *OrderRepo) UpdateStatus(orderID int64, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`,
		orderID, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes con paginación, líneas incluidas.
func (r *OrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders ORDER BY order_date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return r.collect(rows)
}

// ListAll devuelve todas las órdenes (alertas).
func (r *OrderRepo) ListAll() ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderColumns+` FROM purchase_orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	return r.collect(rows)
}

func (r *OrderRepo) collect(rows pgx.Rows) ([]*entity.PurchaseOrder, error) {
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var order entity.PurchaseOrder
		if err := rows.Scan(&order.ID, &order.OrderDate, &order.SupplierID, &order.SectorID, &order.Status,
			&order.ExpectedDelivery, &order.CreatedAt, &order.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &order)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		if err := r.loadLines(order); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Count devuelve el total de órdenes.
func (r *OrderRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM purchase_orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
