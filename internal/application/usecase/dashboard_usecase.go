package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventory"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

const dashboardRecentMovements = 10 // movimientos en el widget del dashboard

// DashboardUseCase genera el resumen operativo del restaurante: conteos,
// ingredientes bajo mínimo, valor del estoque y últimos movimientos.
type DashboardUseCase struct {
	ingredientRepo repository.IngredientRepository
	supplierRepo   repository.SupplierRepository
	orderRepo      repository.OrderRepository
	movementRepo   repository.StockMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	ingredientRepo repository.IngredientRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.OrderRepository,
	movementRepo repository.StockMovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		ingredientRepo: ingredientRepo,
		supplierRepo:   supplierRepo,
		orderRepo:      orderRepo,
		movementRepo:   movementRepo,
	}
}

// GetStats construye el DashboardStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. ListAll ingredientes → conteo, bajo mínimo, valor del estoque
//  2. Count fornecedores
//  3. Count órdenes
//  4. ListRecent movimientos
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type ingredientsResult struct {
		items []*entity.Ingredient
		err   error
	}
	type countResult struct {
		n   int
		err error
	}
	type movementsResult struct {
		items []*entity.StockMovement
		err   error
	}

	ingredientsCh := make(chan ingredientsResult, 1)
	suppliersCh := make(chan countResult, 1)
	ordersCh := make(chan countResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		items, err := uc.ingredientRepo.ListAll()
		ingredientsCh <- ingredientsResult{items, err}
	}()
	go func() {
		n, err := uc.supplierRepo.Count()
		suppliersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.orderRepo.Count()
		ordersCh <- countResult{n, err}
	}()
	go func() {
		items, err := uc.movementRepo.ListRecent(dashboardRecentMovements)
		movementsCh <- movementsResult{items, err}
	}()

	ingredients := <-ingredientsCh
	suppliers := <-suppliersCh
	orders := <-ordersCh
	movements := <-movementsCh

	if ingredients.err != nil {
		return nil, fmt.Errorf("dashboard: ingredientes: %w", ingredients.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: fornecedores: %w", suppliers.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes: %w", orders.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	lowStock := 0
	stockValue := decimal.Zero
	for _, ing := range ingredients.items {
		if ledger.IsLowStock(ing) {
			lowStock++
		}
		if ing.UnitPrice != nil {
			stockValue = stockValue.Add(ing.CurrentStock.Mul(*ing.UnitPrice))
		}
	}

	recent := make([]dto.MovementResponse, 0, len(movements.items))
	for _, m := range movements.items {
		recent = append(recent, inventory.ToMovementResponse(m))
	}

	return &dto.DashboardStatsDTO{
		TotalIngredients: len(ingredients.items),
		TotalSuppliers:   suppliers.n,
		TotalOrders:      orders.n,
		LowStockCount:    lowStock,
		StockValue:       stockValue.Round(2),
		RecentMovements:  recent,
	}, nil
}
