package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

// Stubs de solo lectura: Evaluate únicamente usa ListAll.

type stubIngredientRepo struct{ items []*entity.Ingredient }

func (s *stubIngredientRepo) Create(*entity.Ingredient) error                { return nil }
func (s *stubIngredientRepo) GetByID(int64) (*entity.Ingredient, error)      { return nil, nil }
func (s *stubIngredientRepo) GetForUpdate(int64) (*entity.Ingredient, error) { return nil, nil }
func (s *stubIngredientRepo) Update(*entity.Ingredient) error                { return nil }
func (s *stubIngredientRepo) UpdateStock(int64, decimal.Decimal) error       { return nil }
func (s *stubIngredientRepo) List(int, int) ([]*entity.Ingredient, error)    { return nil, nil }
func (s *stubIngredientRepo) ListAll() ([]*entity.Ingredient, error)         { return s.items, nil }
func (s *stubIngredientRepo) Count() (int, error)                            { return len(s.items), nil }

type stubOrderRepo struct{ items []*entity.PurchaseOrder }

func (s *stubOrderRepo) Create(*entity.PurchaseOrder) error                       { return nil }
func (s *stubOrderRepo) GetByID(int64) (*entity.PurchaseOrder, error)             { return nil, nil }
func (s *stubOrderRepo) GetForUpdate(int64) (*entity.PurchaseOrder, error)        { return nil, nil }
func (s *stubOrderRepo) UpdateLine(int64, decimal.Decimal, decimal.Decimal) error { return nil }
func (s *stubOrderRepo) AddLine(*entity.OrderLine) error                          { return nil }
func (s *stubOrderRepo) RemoveLine(int64) error                                   { return nil }
func (s *stubOrderRepo) UpdateStatus(int64, string) error                         { return nil }
func (s *stubOrderRepo) List(int, int) ([]*entity.PurchaseOrder, error)           { return nil, nil }
func (s *stubOrderRepo) ListAll() ([]*entity.PurchaseOrder, error)                { return s.items, nil }
func (s *stubOrderRepo) Count() (int, error)                                      { return len(s.items), nil }

func TestEvaluate_DerivaOrdenaYCuentaAccionRequerida(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	policy := ledger.AlertPolicy{
		ExpiryWindow:  72 * time.Hour,
		DeliveryGrace: 24 * time.Hour,
		Now:           func() time.Time { return now },
	}

	agotado := &entity.Ingredient{
		ID: 1, Name: "Farinha", Unit: "kg",
		MinStock:     decimal.NewFromInt(5),
		CurrentStock: decimal.Zero,
	}
	normal := &entity.Ingredient{
		ID: 2, Name: "Arroz", Unit: "kg",
		MinStock:     decimal.NewFromInt(5),
		CurrentStock: decimal.NewFromInt(50),
	}
	expected := now.Add(-2 * time.Hour)
	atrasada := &entity.PurchaseOrder{
		ID:               7,
		Status:           entity.OrderStatusShipped,
		ExpectedDelivery: &expected,
	}

	uc := NewUseCase(
		&stubIngredientRepo{items: []*entity.Ingredient{agotado, normal}},
		&stubOrderRepo{items: []*entity.PurchaseOrder{atrasada}},
		policy,
	)

	out, err := uc.Evaluate(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// error (estoque agotado) antes que warning (entrega atrasada).
	assert.Equal(t, entity.AlertTypeLowStock, out.Items[0].Type)
	assert.Equal(t, entity.AlertSeverityError, out.Items[0].Severity)
	assert.Equal(t, entity.AlertTypeDeliveryDelay, out.Items[1].Type)

	// El atraso de 2h no supera la gracia de 24h: no exige acción.
	assert.False(t, out.Items[1].ActionRequired)
	assert.Equal(t, 1, out.ActionRequired)
}

func TestEvaluate_SinCondicionesNoHayAlertas(t *testing.T) {
	uc := NewUseCase(
		&stubIngredientRepo{},
		&stubOrderRepo{},
		ledger.DefaultAlertPolicy(),
	)
	out, err := uc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Zero(t, out.ActionRequired)
}
