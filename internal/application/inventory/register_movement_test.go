package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

type movementFixture struct {
	uc       *RegisterMovementUseCase
	ingRepo  *fakeIngredientRepo
	movRepo  *fakeMovementRepo
	sectRepo *fakeSectorRepo
}

func newMovementFixture(t *testing.T, stock string) (*movementFixture, int64) {
	t.Helper()
	ingRepo := newFakeIngredientRepo()
	movRepo := newFakeMovementRepo()
	sectRepo := newFakeSectorRepo()

	ing := &entity.Ingredient{
		Name:         "Tomate",
		Unit:         "kg",
		MinStock:     decimal.NewFromInt(5),
		CurrentStock: decimal.RequireFromString(stock),
	}
	require.NoError(t, ingRepo.Create(ing))

	uc := NewRegisterMovementUseCase(
		&fakeTxRunner{movRepo: movRepo, ingredientRepo: ingRepo},
		ingRepo,
		sectRepo,
	)
	return &movementFixture{uc: uc, ingRepo: ingRepo, movRepo: movRepo, sectRepo: sectRepo}, ing.ID
}

func TestRegisterMovement_EntradaIncrementaStock(t *testing.T) {
	fx, id := newMovementFixture(t, "10")

	mov, newStock, err := fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		Type:         entity.MovementTypeEntrada,
		Quantity:     decimal.NewFromInt(4),
		Origin:       "compra semanal",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(14).Equal(newStock))
	assert.True(t, decimal.NewFromInt(4).Equal(mov.Quantity))
	assert.NotZero(t, mov.ID)
	assert.NotEmpty(t, mov.BatchID)

	stored, err := fx.ingRepo.GetByID(id)
	require.NoError(t, err)
	assert.True(t, newStock.Equal(stored.CurrentStock))
}

func TestRegisterMovement_SaidaDescuentaYGuardaFirmado(t *testing.T) {
	fx, id := newMovementFixture(t, "10")

	mov, newStock, err := fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		Type:         entity.MovementTypeSaida,
		Quantity:     decimal.NewFromInt(3),
		Origin:       "preparo almoço",
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(7).Equal(newStock))
	// La cantidad se persiste firmada: saida negativa.
	assert.True(t, decimal.NewFromInt(-3).Equal(mov.Quantity))
}

func TestRegisterMovement_SaidaMayorQueStockClampaEnCero(t *testing.T) {
	fx, id := newMovementFixture(t, "2")

	mov, newStock, err := fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		Type:         entity.MovementTypeSaida,
		Quantity:     decimal.NewFromInt(5),
		Origin:       "desperdicio",
	})
	require.NoError(t, err)

	// El stock derivado clampa en 0, pero el movimiento conserva el -5
	// original para la auditoría.
	assert.True(t, newStock.IsZero())
	assert.True(t, decimal.NewFromInt(-5).Equal(mov.Quantity))
}

func TestRegisterMovement_AjusteNegativoYPositivo(t *testing.T) {
	fx, id := newMovementFixture(t, "10")

	_, newStock, err := fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		Type:         entity.MovementTypeAjuste,
		Quantity:     decimal.NewFromInt(-4),
		Origin:       "conteo físico",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(6).Equal(newStock))

	_, newStock, err = fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		Type:         entity.MovementTypeAjuste,
		Quantity:     decimal.NewFromInt(2),
		Origin:       "conteo físico",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8).Equal(newStock))
}

func TestRegisterMovement_Invalido(t *testing.T) {
	fx, id := newMovementFixture(t, "10")
	ctx := context.Background()

	cases := []struct {
		name  string
		input MovementInputDTO
		want  error
	}{
		{
			name:  "tipo desconocido",
			input: MovementInputDTO{IngredientID: id, Type: "transferencia", Quantity: decimal.NewFromInt(1)},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "entrada con cantidad cero",
			input: MovementInputDTO{IngredientID: id, Type: entity.MovementTypeEntrada, Quantity: decimal.Zero},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "saida con cantidad negativa",
			input: MovementInputDTO{IngredientID: id, Type: entity.MovementTypeSaida, Quantity: decimal.NewFromInt(-2)},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "ajuste cero",
			input: MovementInputDTO{IngredientID: id, Type: entity.MovementTypeAjuste, Quantity: decimal.Zero},
			want:  domain.ErrInvalidInput,
		},
		{
			name:  "ingrediente inexistente",
			input: MovementInputDTO{IngredientID: 999, Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(1)},
			want:  domain.ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := fx.uc.RegisterMovement(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Nada quedó persistido.
	movs, err := fx.movRepo.ListByIngredient(id)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestRegisterMovement_SetorInexistente(t *testing.T) {
	fx, id := newMovementFixture(t, "10")
	sectorID := int64(42)

	_, _, err := fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		SectorID:     &sectorID,
		Type:         entity.MovementTypeEntrada,
		Quantity:     decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_SetorValido(t *testing.T) {
	fx, id := newMovementFixture(t, "10")
	require.NoError(t, fx.sectRepo.Create(&entity.Sector{ID: 7, Name: "Cozinha"}))
	sectorID := int64(7)

	mov, _, err := fx.uc.RegisterMovement(context.Background(), MovementInputDTO{
		UserID:       "user-1",
		IngredientID: id,
		SectorID:     &sectorID,
		Type:         entity.MovementTypeSaida,
		Quantity:     decimal.NewFromInt(2),
		Origin:       "preparo jantar",
	})
	require.NoError(t, err)
	require.NotNil(t, mov.SectorID)
	assert.Equal(t, sectorID, *mov.SectorID)
}

func TestRegisterMovement_ReplayCoincideConStockMaterializado(t *testing.T) {
	fx, id := newMovementFixture(t, "0")
	ctx := context.Background()

	steps := []MovementInputDTO{
		{IngredientID: id, Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(10)},
		{IngredientID: id, Type: entity.MovementTypeSaida, Quantity: decimal.NewFromInt(3)},
		{IngredientID: id, Type: entity.MovementTypeAjuste, Quantity: decimal.NewFromInt(-2)},
		{IngredientID: id, Type: entity.MovementTypeSaida, Quantity: decimal.NewFromInt(20)}, // clampa
		{IngredientID: id, Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(6)},
	}
	var last decimal.Decimal
	for _, s := range steps {
		s.UserID = "user-1"
		_, newStock, err := fx.uc.RegisterMovement(ctx, s)
		require.NoError(t, err)
		last = newStock
	}

	stored, err := fx.ingRepo.GetByID(id)
	require.NoError(t, err)
	assert.True(t, last.Equal(stored.CurrentStock))
	assert.True(t, decimal.NewFromInt(6).Equal(stored.CurrentStock))
}
