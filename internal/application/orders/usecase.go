package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventory"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// UseCase casos de uso de órdenes de compra: alta, edición parcial de
// líneas, máquina de estados y recepción de stock al entregar.
type UseCase struct {
	txRunner       TxRunner
	orderRepo      repository.OrderRepository
	supplierRepo   repository.SupplierRepository
	sectorRepo     repository.SectorRepository
	ingredientRepo repository.IngredientRepository
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	sectorRepo repository.SectorRepository,
	ingredientRepo repository.IngredientRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		orderRepo:      orderRepo,
		supplierRepo:   supplierRepo,
		sectorRepo:     sectorRepo,
		ingredientRepo: ingredientRepo,
	}
}

// Create da de alta una orden en estado pending con sus líneas. Valida
// referencias (fornecedor, setor, ingredientes) y que cada línea tenga
// cantidad positiva y precio no negativo.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.SectorID != nil {
		sector, err := uc.sectorRepo.GetByID(*in.SectorID)
		if err != nil {
			return nil, err
		}
		if sector == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	order := &entity.PurchaseOrder{
		OrderDate:        orderDate,
		SupplierID:       in.SupplierID,
		SectorID:         in.SectorID,
		Status:           entity.OrderStatusPending,
		ExpectedDelivery: in.ExpectedDelivery,
		Lines:            make([]entity.OrderLine, 0, len(in.Lines)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, line := range in.Lines {
		if !line.Quantity.IsPositive() || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing, err := uc.ingredientRepo.GetByID(line.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		order.Lines = append(order.Lines, entity.OrderLine{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
		})
	}

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devuelve la orden con el total recalculado desde las líneas.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con paginación; cada total se recalcula en vivo.
func (uc *UseCase) List(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	items, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, order := range items {
		out.Items = append(out.Items, *toOrderResponse(order))
	}
	return out, nil
}

// Update guarda la edición de una orden: solo las líneas sucias (las que
// difieren de lo persistido) se escriben, y el cambio de estado, si viene,
// se valida contra la máquina de transiciones. Todo en una transacción
// bajo bloqueo de la fila de la orden.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if in.Status != nil && !entity.ValidOrderStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	for _, edit := range in.Lines {
		if !edit.Quantity.IsPositive() || edit.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	var updated *entity.PurchaseOrder
	err := uc.txRunner.RunOrders(ctx, func(
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		for _, edit := range in.Lines {
			current := findLine(order, edit.LineID)
			if current == nil {
				return domain.ErrNotFound
			}
			// Línea limpia: mismos valores, no se escribe.
			if current.Quantity.Equal(edit.Quantity) && current.UnitPrice.Equal(edit.UnitPrice) {
				continue
			}
			if err := orderRepo.UpdateLine(edit.LineID, edit.Quantity, edit.UnitPrice); err != nil {
				return err
			}
			current.Quantity = edit.Quantity
			current.UnitPrice = edit.UnitPrice
		}

		if in.Status != nil && *in.Status != order.Status {
			if !entity.CanTransition(order.Status, *in.Status) {
				return domain.ErrInvalidTransition
			}
			if err := orderRepo.UpdateStatus(order.ID, *in.Status); err != nil {
				return err
			}
			order.Status = *in.Status
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// UpdateStatus cambia el estado de la orden validando la transición.
// Al pasar a delivered con ReceiveStock, registra la entrada de cada
// línea en el ledger dentro de la misma transacción (un movimiento por
// línea, mismo lote).
func (uc *UseCase) UpdateStatus(ctx context.Context, id int64, userID string, in dto.UpdateStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.PurchaseOrder
	err := uc.txRunner.RunOrders(ctx, func(
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
		ingredientRepo repository.IngredientRepository,
	) error {
		order, err := orderRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if in.Status == order.Status {
			updated = order
			return nil
		}
		if !entity.CanTransition(order.Status, in.Status) {
			return domain.ErrInvalidTransition
		}
		if err := orderRepo.UpdateStatus(order.ID, in.Status); err != nil {
			return err
		}
		order.Status = in.Status

		if in.Status == entity.OrderStatusDelivered && in.ReceiveStock {
			now := time.Now()
			batchID := uuid.New().String()
			origin := fmt.Sprintf("ordem de compra #%d", order.ID)
			for _, line := range order.Lines {
				err := inventory.RegisterEntradaInTx(
					movRepo, ingredientRepo,
					line.IngredientID, order.SectorID,
					line.Quantity, origin, batchID, userID, now,
				)
				if err != nil {
					return err
				}
			}
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

func findLine(order *entity.PurchaseOrder, lineID int64) *entity.OrderLine {
	for i := range order.Lines {
		if order.Lines[i].ID == lineID {
			return &order.Lines[i]
		}
	}
	return nil
}

func toOrderResponse(order *entity.PurchaseOrder) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:               order.ID,
		OrderDate:        order.OrderDate,
		SupplierID:       order.SupplierID,
		SectorID:         order.SectorID,
		Status:           order.Status,
		ExpectedDelivery: order.ExpectedDelivery,
		Lines:            make([]dto.OrderLineResponse, 0, len(order.Lines)),
		Total:            ledger.OrderTotal(order),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
	for _, line := range order.Lines {
		out.Lines = append(out.Lines, dto.OrderLineResponse{
			ID:           line.ID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineTotal:    ledger.LineTotal(line),
		})
	}
	return out
}
