package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de compra
// y sus líneas. La orden es dueña exclusiva de sus líneas.
type OrderRepository interface {
	// Create inserta la orden con sus líneas y asigna los IDs.
	Create(order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus líneas cargadas.
	GetByID(id int64) (*entity.PurchaseOrder, error)
	// GetForUpdate bloquea la fila de la orden durante ediciones.
	GetForUpdate(id int64) (*entity.PurchaseOrder, error)
	// UpdateLine persiste cantidad y precio de una línea (solo líneas sucias).
	UpdateLine(lineID int64, quantity, unitPrice decimal.Decimal) error
	AddLine(line *entity.OrderLine) error
	RemoveLine(lineID int64) error
	UpdateStatus(orderID int64, status string) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	ListAll() ([]*entity.PurchaseOrder, error)
	Count() (int, error)
}
