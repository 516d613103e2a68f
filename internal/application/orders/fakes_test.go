package orders

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ─────────────────────────────────────────────
// Fakes en memoria para los casos de uso
// ─────────────────────────────────────────────

type fakeOrderRepo struct {
	nextID     int64
	nextLineID int64
	items      map[int64]*entity.PurchaseOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, nextLineID: 1, items: make(map[int64]*entity.PurchaseOrder)}
}

func cloneOrder(o *entity.PurchaseOrder) *entity.PurchaseOrder {
	cp := *o
	cp.Lines = make([]entity.OrderLine, len(o.Lines))
	copy(cp.Lines, o.Lines)
	return &cp
}

func (r *fakeOrderRepo) Create(order *entity.PurchaseOrder) error {
	order.ID = r.nextID
	r.nextID++
	for i := range order.Lines {
		order.Lines[i].ID = r.nextLineID
		order.Lines[i].OrderID = order.ID
		r.nextLineID++
	}
	r.items[order.ID] = cloneOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

func (r *fakeOrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) UpdateLine(lineID int64, quantity, unitPrice decimal.Decimal) error {
	for _, o := range r.items {
		for i := range o.Lines {
			if o.Lines[i].ID == lineID {
				o.Lines[i].Quantity = quantity
				o.Lines[i].UnitPrice = unitPrice
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (r *fakeOrderRepo) AddLine(line *entity.OrderLine) error {
	o, ok := r.items[line.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	line.ID = r.nextLineID
	r.nextLineID++
	o.Lines = append(o.Lines, *line)
	return nil
}

func (r *fakeOrderRepo) RemoveLine(lineID int64) error {
	for _, o := range r.items {
		for i := range o.Lines {
			if o.Lines[i].ID == lineID {
				o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (r *fakeOrderRepo) UpdateStatus(orderID int64, status string) error {
	o, ok := r.items[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	all, _ := r.ListAll()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeOrderRepo) ListAll() ([]*entity.PurchaseOrder, error) {
	out := make([]*entity.PurchaseOrder, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeOrderRepo) Count() (int, error) { return len(r.items), nil }

type fakeSupplierRepo struct {
	nextID int64
	items  map[int64]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{nextID: 1, items: make(map[int64]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	s.ID = r.nextID
	r.nextID++
	r.items[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := r.items[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSupplierRepo) Count() (int, error) { return len(r.items), nil }

type fakeSectorRepo struct {
	items map[int64]*entity.Sector
}

func newFakeSectorRepo() *fakeSectorRepo {
	return &fakeSectorRepo{items: make(map[int64]*entity.Sector)}
}

func (r *fakeSectorRepo) Create(s *entity.Sector) error {
	r.items[s.ID] = s
	return nil
}

func (r *fakeSectorRepo) GetByID(id int64) (*entity.Sector, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSectorRepo) List() ([]*entity.Sector, error) {
	out := make([]*entity.Sector, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

type fakeIngredientRepo struct {
	nextID int64
	items  map[int64]*entity.Ingredient
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{nextID: 1, items: make(map[int64]*entity.Ingredient)}
}

func (r *fakeIngredientRepo) Create(ing *entity.Ingredient) error {
	ing.ID = r.nextID
	r.nextID++
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) GetByID(id int64) (*entity.Ingredient, error) {
	ing, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (r *fakeIngredientRepo) GetForUpdate(id int64) (*entity.Ingredient, error) {
	return r.GetByID(id)
}

func (r *fakeIngredientRepo) Update(ing *entity.Ingredient) error {
	if _, ok := r.items[ing.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ing
	r.items[ing.ID] = &cp
	return nil
}

func (r *fakeIngredientRepo) UpdateStock(id int64, newStock decimal.Decimal) error {
	ing, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	ing.CurrentStock = newStock
	return nil
}

func (r *fakeIngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	all, _ := r.ListAll()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeIngredientRepo) ListAll() ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.items))
	for _, ing := range r.items {
		cp := *ing
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeIngredientRepo) Count() (int, error) { return len(r.items), nil }

type fakeMovementRepo struct {
	nextID int64
	items  []*entity.StockMovement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{nextID: 1}
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByIngredient(ingredientID int64) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0)
	for _, m := range r.items {
		if m.IngredientID == ingredientID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	n := len(r.items)
	out := make([]*entity.StockMovement, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente contra los fakes.
type fakeTxRunner struct {
	orderRepo      repository.OrderRepository
	movRepo        repository.StockMovementRepository
	ingredientRepo repository.IngredientRepository
}

func (t *fakeTxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	movRepo repository.StockMovementRepository,
	ingredientRepo repository.IngredientRepository,
) error) error {
	return fn(t.orderRepo, t.movRepo, t.ingredientRepo)
}
