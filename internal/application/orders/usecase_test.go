package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

type orderFixture struct {
	uc        *UseCase
	orderRepo *fakeOrderRepo
	supplier  *entity.Supplier
	ingRepo   *fakeIngredientRepo
	movRepo   *fakeMovementRepo
	tomateID  int64
	cebollaID int64
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	supplierRepo := newFakeSupplierRepo()
	sectorRepo := newFakeSectorRepo()
	ingRepo := newFakeIngredientRepo()
	movRepo := newFakeMovementRepo()

	supplier := &entity.Supplier{Name: "Hortifruti Central"}
	require.NoError(t, supplierRepo.Create(supplier))

	tomate := &entity.Ingredient{Name: "Tomate", Unit: "kg", CurrentStock: decimal.NewFromInt(5)}
	cebolla := &entity.Ingredient{Name: "Cebola", Unit: "kg", CurrentStock: decimal.NewFromInt(2)}
	require.NoError(t, ingRepo.Create(tomate))
	require.NoError(t, ingRepo.Create(cebolla))

	uc := NewUseCase(
		&fakeTxRunner{orderRepo: orderRepo, movRepo: movRepo, ingredientRepo: ingRepo},
		orderRepo, supplierRepo, sectorRepo, ingRepo,
	)
	return &orderFixture{
		uc:        uc,
		orderRepo: orderRepo,
		supplier:  supplier,
		ingRepo:   ingRepo,
		movRepo:   movRepo,
		tomateID:  tomate.ID,
		cebollaID: cebolla.ID,
	}
}

func (fx *orderFixture) createOrder(t *testing.T) *dto.OrderResponse {
	t.Helper()
	resp, err := fx.uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: fx.supplier.ID,
		Lines: []dto.OrderLineInput{
			{IngredientID: fx.tomateID, Quantity: decimal.NewFromInt(30), UnitPrice: decimal.RequireFromString("4.50")},
			{IngredientID: fx.cebollaID, Quantity: decimal.NewFromInt(20), UnitPrice: decimal.RequireFromString("2.80")},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestOrderCreate_TotalVivo(t *testing.T) {
	fx := newOrderFixture(t)

	resp := fx.createOrder(t)

	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	require.Len(t, resp.Lines, 2)
	// (30 × 4.50) + (20 × 2.80) = 135.00 + 56.00 = 191.00
	assert.True(t, decimal.RequireFromString("135").Equal(resp.Lines[0].LineTotal))
	assert.True(t, decimal.RequireFromString("56").Equal(resp.Lines[1].LineTotal))
	assert.True(t, decimal.RequireFromString("191").Equal(resp.Total))
}

func TestOrderCreate_Invalida(t *testing.T) {
	fx := newOrderFixture(t)
	ctx := context.Background()

	// Sin líneas.
	_, err := fx.uc.Create(ctx, dto.CreateOrderRequest{SupplierID: fx.supplier.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Fornecedor inexistente.
	_, err = fx.uc.Create(ctx, dto.CreateOrderRequest{
		SupplierID: 999,
		Lines:      []dto.OrderLineInput{{IngredientID: fx.tomateID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Cantidad no positiva.
	_, err = fx.uc.Create(ctx, dto.CreateOrderRequest{
		SupplierID: fx.supplier.ID,
		Lines:      []dto.OrderLineInput{{IngredientID: fx.tomateID, Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Precio negativo.
	_, err = fx.uc.Create(ctx, dto.CreateOrderRequest{
		SupplierID: fx.supplier.ID,
		Lines:      []dto.OrderLineInput{{IngredientID: fx.tomateID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(-1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ingrediente inexistente.
	_, err = fx.uc.Create(ctx, dto.CreateOrderRequest{
		SupplierID: fx.supplier.ID,
		Lines:      []dto.OrderLineInput{{IngredientID: 999, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdate_EditaPrecioYRecalculaTotal(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)

	// Subir el precio del tomate de 4.50 a 5.00: +15.00 sobre el total.
	updated, err := fx.uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Lines: []dto.OrderLineEdit{
			{LineID: created.Lines[0].ID, Quantity: decimal.NewFromInt(30), UnitPrice: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("206").Equal(updated.Total))
}

func TestOrderUpdate_LineasLimpiasNoSeEscriben(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)

	// Mandar la línea 1 con los mismos valores y la 2 con precio nuevo:
	// solo la sucia cambia.
	updated, err := fx.uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		Lines: []dto.OrderLineEdit{
			{LineID: created.Lines[0].ID, Quantity: decimal.NewFromInt(30), UnitPrice: decimal.RequireFromString("4.50")},
			{LineID: created.Lines[1].ID, Quantity: decimal.NewFromInt(20), UnitPrice: decimal.RequireFromString("3.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.5").Equal(updated.Lines[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("3").Equal(updated.Lines[1].UnitPrice))
	// 135.00 + 60.00
	assert.True(t, decimal.RequireFromString("195").Equal(updated.Total))
}

func TestOrderUpdate_TransicionIlegalNoPersisteNada(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)

	// pending -> delivered saltando estados: rechazado.
	delivered := entity.OrderStatusDelivered
	_, err := fx.uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{Status: &delivered})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := fx.orderRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestOrderUpdate_TransicionLegal(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)

	confirmed := entity.OrderStatusConfirmed
	updated, err := fx.uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderUpdateStatus_CadenaCompleta(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)
	ctx := context.Background()

	for _, status := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
	} {
		resp, err := fx.uc.UpdateStatus(ctx, created.ID, "user-1", dto.UpdateStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, resp.Status)
	}

	// delivered es terminal.
	_, err := fx.uc.UpdateStatus(ctx, created.ID, "user-1", dto.UpdateStatusRequest{Status: entity.OrderStatusCancelled})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderUpdateStatus_MismoEstadoEsNoOp(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)

	resp, err := fx.uc.UpdateStatus(context.Background(), created.ID, "user-1", dto.UpdateStatusRequest{Status: entity.OrderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
}

func TestOrderUpdateStatus_EntregaConRecepcionDeStock(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)
	ctx := context.Background()

	_, err := fx.uc.UpdateStatus(ctx, created.ID, "user-1", dto.UpdateStatusRequest{Status: entity.OrderStatusConfirmed})
	require.NoError(t, err)
	_, err = fx.uc.UpdateStatus(ctx, created.ID, "user-1", dto.UpdateStatusRequest{Status: entity.OrderStatusShipped})
	require.NoError(t, err)

	resp, err := fx.uc.UpdateStatus(ctx, created.ID, "user-1", dto.UpdateStatusRequest{
		Status:       entity.OrderStatusDelivered,
		ReceiveStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, resp.Status)

	// Cada línea generó una entrada: 5+30=35 de tomate, 2+20=22 de cebola.
	tomate, err := fx.ingRepo.GetByID(fx.tomateID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(35).Equal(tomate.CurrentStock))

	cebolla, err := fx.ingRepo.GetByID(fx.cebollaID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(22).Equal(cebolla.CurrentStock))

	// Los movimientos comparten el lote de la recepción.
	movsTomate, err := fx.movRepo.ListByIngredient(fx.tomateID)
	require.NoError(t, err)
	require.Len(t, movsTomate, 1)
	assert.Equal(t, entity.MovementTypeEntrada, movsTomate[0].Type)
	assert.Contains(t, movsTomate[0].Origin, "ordem de compra")

	movsCebolla, err := fx.movRepo.ListByIngredient(fx.cebollaID)
	require.NoError(t, err)
	require.Len(t, movsCebolla, 1)
	assert.Equal(t, movsTomate[0].BatchID, movsCebolla[0].BatchID)
}

func TestOrderUpdateStatus_EntregaSinRecepcionNoMueveStock(t *testing.T) {
	fx := newOrderFixture(t)
	created := fx.createOrder(t)
	ctx := context.Background()

	for _, status := range []string{
		entity.OrderStatusConfirmed,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
	} {
		_, err := fx.uc.UpdateStatus(ctx, created.ID, "user-1", dto.UpdateStatusRequest{Status: status})
		require.NoError(t, err)
	}

	movs, err := fx.movRepo.ListByIngredient(fx.tomateID)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestOrderGet_Inexistente(t *testing.T) {
	fx := newOrderFixture(t)
	_, err := fx.uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderList_TotalesRecalculados(t *testing.T) {
	fx := newOrderFixture(t)
	fx.createOrder(t)
	fx.createOrder(t)

	out, err := fx.uc.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Total)
	for _, o := range out.Items {
		assert.True(t, decimal.RequireFromString("191").Equal(o.Total))
	}
}

func TestOrderCreate_FechaExplicita(t *testing.T) {
	fx := newOrderFixture(t)
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	resp, err := fx.uc.Create(context.Background(), dto.CreateOrderRequest{
		SupplierID: fx.supplier.ID,
		OrderDate:  &date,
		Lines: []dto.OrderLineInput{
			{IngredientID: fx.tomateID, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)
	assert.True(t, date.Equal(resp.OrderDate))
}
