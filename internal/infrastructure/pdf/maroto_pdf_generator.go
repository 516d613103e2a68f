// Package pdf genera la versión imprimible de una orden de compra para
// enviarla al fornecedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Restaurante  │  Orden N° + Fecha + Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FORNECEDOR: Nombre + contacto                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Ingrediente | Unidad | P.Unit | Total línea   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE LA ORDEN (recalculado desde las líneas)            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-api/internal/application/orders"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 31}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa orders.OrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	restaurantName string
}

// NewMarotoPDFGenerator construye el generador con el nombre del
// restaurante que encabeza el documento.
func NewMarotoPDFGenerator(restaurantName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{restaurantName: restaurantName}
}

// GenerateOrderPDF genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.PurchaseOrder,
	supplier *entity.Supplier,
	lines []orders.OrderLineForPDF,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Ordem de Compra #%d", order.ID), true).
		WithAuthor(g.restaurantName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	if order.ExpectedDelivery != nil {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(
				"Entrega esperada: "+order.ExpectedDelivery.Format("02/01/2006"),
				props.Text{Size: 8, Color: colorGray, Top: 2},
			),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: restaurante (izq) y número + fecha + estado (der).
func (g *MarotoPDFGenerator) headerRow(order *entity.PurchaseOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.restaurantName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestão de Estoque", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEM DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(
				fmt.Sprintf("Data: %s   |   Status: %s",
					order.OrderDate.Format("02/01/2006"), order.Status),
				props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray},
			),
		),
	)
}

// supplierRow: datos del fornecedor destinatario.
func supplierRow(supplier *entity.Supplier) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FORNECEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(supplier.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Contato: "+nonEmpty(supplier.Contact, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Ingrediente", 5, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de la orden.
func tableLineRows(lines []orders.OrderLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		qty := l.Quantity.StringFixed(2)
		if l.Unit != "" {
			qty += " " + l.Unit
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				qty,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.IngredientName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+l.LineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la orden alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DA ORDEM:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("R$ "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
