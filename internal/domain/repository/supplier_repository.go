package repository

import "github.com/jhoicas/restaurante-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para fornecedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Count() (int, error)
}
