package inventory

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
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
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

// fakeTxRunner ejecuta la función directamente contra los fakes; si la
// función devuelve error, los fakes no se revierten (los tests que lo
// necesitan usan repos frescos).
type fakeTxRunner struct {
	movRepo        repository.StockMovementRepository
	ingredientRepo repository.IngredientRepository
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	ingredientRepo repository.IngredientRepository,
) error) error {
	return fn(t.movRepo, t.ingredientRepo)
}
