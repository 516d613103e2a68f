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

// IngredientUseCase casos de uso de ingredientes: alta con movimiento de
// apertura, edición de metadatos, historial y reconciliación del ledger.
type IngredientUseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
	thresholds     ledger.Thresholds
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	thresholds ledger.Thresholds,
) *IngredientUseCase {
	return &IngredientUseCase{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		movementRepo:   movementRepo,
		thresholds:     thresholds,
	}
}

// Create da de alta un ingrediente. El stock inicial no es un campo suelto:
// se registra como movimiento de apertura (ajuste "estoque inicial") en la
// misma transacción, de modo que el replay del ledger reproduce el saldo.
func (uc *IngredientUseCase) Create(ctx context.Context, userID string, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.InitialStock.IsNegative() || in.MaxStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ing := &entity.Ingredient{
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		CurrentStock: in.InitialStock,
		UnitPrice:    in.UnitPrice,
		ExpiryDate:   in.ExpiryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		if err := ingredientRepo.Create(ing); err != nil {
			return err
		}
		if in.InitialStock.IsZero() {
			return nil
		}
		return movRepo.Create(&entity.StockMovement{
			IngredientID: ing.ID,
			BatchID:      uuid.New().String(),
			Date:         now,
			Type:         entity.MovementTypeAjuste,
			Quantity:     in.InitialStock,
			Origin:       "estoque inicial",
			CreatedAt:    now,
			CreatedBy:    userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ing), nil
}

// Update edita metadatos (nombre, descripción, unidad, umbrales, precio,
// vencimiento). El stock actual no se toca aquí: solo cambia vía movimientos.
func (uc *IngredientUseCase) Update(ctx context.Context, id int64, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		ing.Name = *in.Name
	}
	if in.Description != nil {
		ing.Description = *in.Description
	}
	if in.Unit != nil {
		ing.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		if in.MaxStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.MaxStock = *in.MaxStock
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing.UnitPrice = in.UnitPrice
	}
	if in.ExpiryDate != nil {
		ing.ExpiryDate = in.ExpiryDate
	}
	ing.UpdatedAt = time.Now()

	if err := uc.ingredientRepo.Update(ing); err != nil {
		return nil, err
	}
	return uc.toResponse(ing), nil
}

// GetByID obtiene un ingrediente con su clasificación de stock.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id int64) (*dto.IngredientResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, nil
	}
	return uc.toResponse(ing), nil
}

// List lista ingredientes con paginación.
func (uc *IngredientUseCase) List(ctx context.Context, limit, offset int) (*dto.IngredientListResponse, error) {
	items, err := uc.ingredientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.ingredientRepo.Count()
	if err != nil {
		return nil, err
	}
	out := &dto.IngredientListResponse{
		Items: make([]dto.IngredientResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, ing := range items {
		out.Items = append(out.Items, *uc.toResponse(ing))
	}
	return out, nil
}

// History devuelve el historial de movimientos en orden de ID ascendente.
func (uc *IngredientUseCase) History(ctx context.Context, ingredientID int64) (*dto.MovementListResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movementRepo.ListByIngredient(ingredientID)
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(movs)), Total: len(movs)}
	for _, m := range movs {
		out.Items = append(out.Items, ToMovementResponse(m))
	}
	return out, nil
}

// Reconcile compara el stock materializado contra el replay completo del
// historial (mismo clamp, orden de ID). Con repair, el valor del replay se
// escribe bajo bloqueo de fila: el replay es la fuente de verdad.
func (uc *IngredientUseCase) Reconcile(ctx context.Context, ingredientID int64, repair bool) (*dto.ReconcileResponse, error) {
	ing, err := uc.ingredientRepo.GetByID(ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movementRepo.ListByIngredient(ingredientID)
	if err != nil {
		return nil, err
	}

	replayed := ledger.RecomputeFromHistory(decimal.Zero, movs)
	out := &dto.ReconcileResponse{
		IngredientID: ingredientID,
		StoredStock:  ing.CurrentStock,
		ReplayStock:  replayed,
		Drift:        ing.CurrentStock.Sub(replayed),
		Consistent:   ing.CurrentStock.Equal(replayed),
		Movements:    len(movs),
	}
	if out.Consistent || !repair {
		return out, nil
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		locked, err := ingredientRepo.GetForUpdate(ingredientID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		// Re-reproducir dentro de la tx: pudo entrar un movimiento nuevo
		// entre la lectura y el bloqueo.
		movs, err := movRepo.ListByIngredient(ingredientID)
		if err != nil {
			return err
		}
		replayed = ledger.RecomputeFromHistory(decimal.Zero, movs)
		return ingredientRepo.UpdateStock(ingredientID, replayed)
	})
	if err != nil {
		return nil, err
	}
	out.ReplayStock = replayed
	out.Repaired = true
	return out, nil
}

func (uc *IngredientUseCase) toResponse(ing *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:           ing.ID,
		Name:         ing.Name,
		Description:  ing.Description,
		Unit:         ing.Unit,
		MinStock:     ing.MinStock,
		MaxStock:     ing.MaxStock,
		CurrentStock: ing.CurrentStock,
		UnitPrice:    ing.UnitPrice,
		ExpiryDate:   ing.ExpiryDate,
		StockLevel:   uc.thresholds.Classify(ing),
		LowStock:     ledger.IsLowStock(ing),
		CreatedAt:    ing.CreatedAt,
		UpdatedAt:    ing.UpdatedAt,
	}
}
