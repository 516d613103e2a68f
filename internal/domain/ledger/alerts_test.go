package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testPolicy() ledger.AlertPolicy {
	p := ledger.DefaultAlertPolicy()
	p.Now = func() time.Time { return fixedNow }
	return p
}

func datePtr(t time.Time) *time.Time { return &t }

// ──────────────────────────────────────────────────────────────────────────────
// low_stock
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: minStock=12, stock=8 → alerta low_stock con severidad warning
// (stock > 0) y acción requerida.
func TestDeriveAlerts_LowStockWarning(t *testing.T) {
	ing := ingWithStock("8", "12")
	ing.ID = 7

	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{ing}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, alerts[0].Type)
	assert.Equal(t, entity.AlertSeverityWarning, alerts[0].Severity)
	assert.True(t, alerts[0].ActionRequired)
	require.NotNil(t, alerts[0].IngredientID)
	assert.Equal(t, int64(7), *alerts[0].IngredientID)
}

// Escenario: tras una saida que deja el stock en 0, la severidad sube a error.
func TestDeriveAlerts_LowStockErrorConStockCero(t *testing.T) {
	ing := ingWithStock("8", "12")
	updated := ledger.ApplyMovement(*ing, entity.StockMovement{Quantity: dec("-10")})
	require.True(t, updated.CurrentStock.IsZero())

	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{&updated}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertSeverityError, alerts[0].Severity)
}

func TestDeriveAlerts_SinAlertaConStockNormal(t *testing.T) {
	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{ingWithStock("50", "10")}, nil)
	assert.Empty(t, alerts)
}

// Dedup: nunca hay dos low_stock para el mismo ingrediente en una pasada.
func TestDeriveAlerts_DedupPorIngrediente(t *testing.T) {
	a := ingWithStock("0", "5")
	a.ID = 1
	b := ingWithStock("2", "5")
	b.ID = 2

	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{a, b}, nil)

	seen := map[int64]int{}
	for _, al := range alerts {
		if al.Type == entity.AlertTypeLowStock {
			seen[*al.IngredientID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "ingrediente %d con %d alertas low_stock", id, n)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// expiring
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveAlerts_ExpiringDentroDeVentana(t *testing.T) {
	ing := ingWithStock("50", "10") // stock sano: solo debe salir expiring
	ing.ID = 3
	ing.ExpiryDate = datePtr(fixedNow.Add(48 * time.Hour))

	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{ing}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeExpiring, alerts[0].Type)
	assert.Equal(t, entity.AlertSeverityError, alerts[0].Severity)
	assert.True(t, alerts[0].ActionRequired)
}

func TestDeriveAlerts_SinExpiringFueraDeVentana(t *testing.T) {
	ing := ingWithStock("50", "10")
	ing.ExpiryDate = datePtr(fixedNow.Add(10 * 24 * time.Hour))

	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{ing}, nil)
	assert.Empty(t, alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// delivery_delay
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveAlerts_EntregaAtrasada(t *testing.T) {
	order := &entity.PurchaseOrder{
		ID:               40,
		Status:           entity.OrderStatusShipped,
		ExpectedDelivery: datePtr(fixedNow.Add(-24 * time.Hour)),
	}

	alerts := testPolicy().DeriveAlerts(nil, []*entity.PurchaseOrder{order})

	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertTypeDeliveryDelay, alerts[0].Type)
	assert.Equal(t, entity.AlertSeverityWarning, alerts[0].Severity)
	assert.True(t, alerts[0].ActionRequired, "sin gracia configurada, cualquier atraso exige acción")
	require.NotNil(t, alerts[0].OrderID)
	assert.Equal(t, int64(40), *alerts[0].OrderID)
}

// Con gracia configurada, el atraso menor a la gracia informa pero no exige
// acción.
func TestDeriveAlerts_GraciaDeEntrega(t *testing.T) {
	policy := testPolicy()
	policy.DeliveryGrace = 48 * time.Hour

	order := &entity.PurchaseOrder{
		ID:               41,
		Status:           entity.OrderStatusConfirmed,
		ExpectedDelivery: datePtr(fixedNow.Add(-24 * time.Hour)),
	}

	alerts := policy.DeriveAlerts(nil, []*entity.PurchaseOrder{order})
	require.Len(t, alerts, 1)
	assert.False(t, alerts[0].ActionRequired)
}

func TestDeriveAlerts_SinAlertaParaEntregadasOCanceladas(t *testing.T) {
	past := datePtr(fixedNow.Add(-72 * time.Hour))
	orders := []*entity.PurchaseOrder{
		{ID: 1, Status: entity.OrderStatusDelivered, ExpectedDelivery: past},
		{ID: 2, Status: entity.OrderStatusCancelled, ExpectedDelivery: past},
		{ID: 3, Status: entity.OrderStatusPending}, // sin fecha esperada
	}

	alerts := testPolicy().DeriveAlerts(nil, orders)
	assert.Empty(t, alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// ordenación determinista
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveAlerts_OrdenPorSeveridad(t *testing.T) {
	agotado := ingWithStock("0", "5") // error
	agotado.ID = 1
	bajo := ingWithStock("3", "5") // warning
	bajo.ID = 2
	order := &entity.PurchaseOrder{ // warning
		ID:               9,
		Status:           entity.OrderStatusShipped,
		ExpectedDelivery: datePtr(fixedNow.Add(-time.Hour)),
	}

	alerts := testPolicy().DeriveAlerts([]*entity.Ingredient{bajo, agotado}, []*entity.PurchaseOrder{order})

	require.Len(t, alerts, 3)
	assert.Equal(t, entity.AlertSeverityError, alerts[0].Severity, "error primero")

	// misma entrada → misma salida, en el mismo orden
	again := testPolicy().DeriveAlerts([]*entity.Ingredient{bajo, agotado}, []*entity.PurchaseOrder{order})
	assert.Equal(t, alerts, again)
}
