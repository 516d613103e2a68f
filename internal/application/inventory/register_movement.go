package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del ledger de forma
// transaccional (entrada, saida, ajuste) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	sectorRepo     repository.SectorRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	sectorRepo repository.SectorRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		sectorRepo:     sectorRepo,
	}
}

// MovementInputDTO entrada para registrar un movimiento del ledger.
// Quantity es la magnitud (> 0) para entrada/saida; para ajuste es el
// delta firmado tal cual.
type MovementInputDTO struct {
	UserID       string
	IngredientID int64
	SectorID     *int64
	Type         string
	Quantity     decimal.Decimal
	Origin       string
	Date         *time.Time
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea la
// fila del ingrediente, deriva el nuevo stock con clamp en 0 y persiste
// movimiento + stock en la misma tx. El movimiento conserva su cantidad
// firmada original aunque el stock derivado quede clampado: el piso es
// del agregado, no del registro de auditoría.
//
// Devuelve el movimiento creado (con ID asignado) y el stock resultante.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.StockMovement, decimal.Decimal, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}
	signed, err := ledger.SignedQuantity(input.Type, input.Quantity)
	if err != nil {
		return nil, decimal.Zero, err
	}

	// Referencias: ingrediente obligatorio, setor opcional.
	ing, err := uc.ingredientRepo.GetByID(input.IngredientID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if ing == nil {
		return nil, decimal.Zero, domain.ErrNotFound
	}
	if input.SectorID != nil {
		sector, err := uc.sectorRepo.GetByID(*input.SectorID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if sector == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	mov := &entity.StockMovement{
		IngredientID: input.IngredientID,
		SectorID:     input.SectorID,
		BatchID:      uuid.New().String(),
		Date:         date,
		Type:         input.Type,
		Quantity:     signed,
		Origin:       input.Origin,
		CreatedAt:    now,
		CreatedBy:    input.UserID,
	}

	var newStock decimal.Decimal
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		// Bloquea la fila del ingrediente para serializar escritores.
		locked, err := ingredientRepo.GetForUpdate(input.IngredientID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newStock = ledger.Apply(locked.CurrentStock, signed)
		if err := ingredientRepo.UpdateStock(locked.ID, newStock); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return mov, newStock, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	mov, newStock, err := uc.RegisterMovement(ctx, MovementInputDTO{
		UserID:       userID,
		IngredientID: in.IngredientID,
		SectorID:     in.SectorID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		Origin:       in.Origin,
		Date:         in.Date,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterMovementResponse{
		Movement: ToMovementResponse(mov),
		NewStock: newStock,
	}, nil
}

// RegisterEntradaInTx registra una entrada usando repositorios ya atados a
// la transacción del caller (recepción de órdenes de compra: ver el caso
// de uso de órdenes). Aplica el mismo bloqueo de fila y clamp que el flujo
// normal.
func RegisterEntradaInTx(
	movRepo repository.StockMovementRepository,
	ingredientRepo repository.IngredientRepository,
	ingredientID int64,
	sectorID *int64,
	quantity decimal.Decimal,
	origin, batchID, userID string,
	now time.Time,
) error {
	signed, err := ledger.SignedQuantity(entity.MovementTypeEntrada, quantity)
	if err != nil {
		return err
	}
	locked, err := ingredientRepo.GetForUpdate(ingredientID)
	if err != nil {
		return err
	}
	if locked == nil {
		return domain.ErrNotFound
	}
	newStock := ledger.Apply(locked.CurrentStock, signed)
	if err := ingredientRepo.UpdateStock(locked.ID, newStock); err != nil {
		return err
	}
	return movRepo.Create(&entity.StockMovement{
		IngredientID: ingredientID,
		SectorID:     sectorID,
		BatchID:      batchID,
		Date:         now,
		Type:         entity.MovementTypeEntrada,
		Quantity:     signed,
		Origin:       origin,
		CreatedAt:    now,
		CreatedBy:    userID,
	})
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		IngredientID: m.IngredientID,
		SectorID:     m.SectorID,
		BatchID:      m.BatchID,
		Date:         m.Date,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Origin:       m.Origin,
		CreatedAt:    m.CreatedAt,
	}
}
