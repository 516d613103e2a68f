package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/ledger"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// OrderLineForPDF línea ya resuelta (nombre y unidad del ingrediente)
// lista para el render.
type OrderLineForPDF struct {
	IngredientName string
	Unit           string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	LineTotal      decimal.Decimal
}

// OrderPDFGenerator puerto de generación del PDF de la orden de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(
		ctx context.Context,
		order *entity.PurchaseOrder,
		supplier *entity.Supplier,
		lines []OrderLineForPDF,
		total decimal.Decimal,
	) ([]byte, error)
}

// PDFUseCase exporta una orden de compra como PDF para enviarla al
// fornecedor.
type PDFUseCase struct {
	orderRepo      repository.OrderRepository
	supplierRepo   repository.SupplierRepository
	ingredientRepo repository.IngredientRepository
	generator      OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso de exportación.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	ingredientRepo repository.IngredientRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:      orderRepo,
		supplierRepo:   supplierRepo,
		ingredientRepo: ingredientRepo,
		generator:      generator,
	}
}

// Export resuelve orden, fornecedor e ingredientes y genera el PDF.
// El total del documento es el mismo recálculo vivo que sirve la API.
func (uc *PDFUseCase) Export(ctx context.Context, orderID int64) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(order.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]OrderLineForPDF, 0, len(order.Lines))
	for _, line := range order.Lines {
		ing, err := uc.ingredientRepo.GetByID(line.IngredientID)
		if err != nil {
			return nil, err
		}
		name, unit := "—", ""
		if ing != nil {
			name, unit = ing.Name, ing.Unit
		}
		lines = append(lines, OrderLineForPDF{
			IngredientName: name,
			Unit:           unit,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			LineTotal:      ledger.LineTotal(line),
		})
	}
	return uc.generator.GenerateOrderPDF(ctx, order, supplier, lines, ledger.OrderTotal(order))
}
