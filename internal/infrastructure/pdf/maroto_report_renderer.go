// Package pdf implementa los reportes descargables en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Título del reporte + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: columnas según el reporte                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / unidades / valor del inventario       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/reports"
	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 139, Green: 69, Blue: 19}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ reports.ReportRenderer = (*MarotoReportRenderer)(nil)

// MarotoReportRenderer implementa reports.ReportRenderer usando Maroto v2.
type MarotoReportRenderer struct {
	businessName string
}

// NewMarotoReportRenderer construye el renderer con el nombre del negocio
// para el encabezado de los reportes.
func NewMarotoReportRenderer(businessName string) *MarotoReportRenderer {
	return &MarotoReportRenderer{businessName: businessName}
}

// RenderInventory genera el reporte general de inventario.
func (g *MarotoReportRenderer) RenderInventory(products []*entity.Product) ([]byte, error) {
	m := g.newDocument("Reporte de Inventario")

	m.AddRows(inventoryHeaderRow())
	for _, p := range products {
		m.AddRows(inventoryDetailRow(p))
	}

	totalStock := 0
	totalValue := decimal.Zero
	for _, p := range products {
		totalStock += p.CurrentStock
		totalValue = totalValue.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(products), totalStock, totalValue))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// RenderLowStock genera el reporte de productos con stock bajo.
func (g *MarotoReportRenderer) RenderLowStock(products []dto.LowStockProductDTO) ([]byte, error) {
	m := g.newDocument("Reporte de Stock Bajo")

	m.AddRows(lowStockHeaderRow())
	for _, p := range products {
		m.AddRows(lowStockDetailRow(p))
	}
	if len(products) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay productos con stock bajo.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// RenderMovements genera el historial de movimientos del período.
func (g *MarotoReportRenderer) RenderMovements(movements []dto.MovementResponse, period string) ([]byte, error) {
	m := g.newDocument("Reporte de Movimientos")

	if period != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Período: "+period, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
	}

	m.AddRows(movementsHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementDetailRow(mov))
	}
	if len(movements) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay movimientos en el período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportRenderer) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	fecha := time.Now().Format("02/01/2006 15:04")
	m.AddRows(row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de Inventario", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 2, Left: 1, Right: 1,
	}))
}

// inventoryHeaderRow: cabecera de la tabla del reporte general.
func inventoryHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Producto", 4, align.Left),
		headerCell("Categoría", 2, align.Left),
		headerCell("Stock", 1, align.Center),
		headerCell("Mínimo", 1, align.Center),
		headerCell("P. Venta", 2, align.Right),
		headerCell("Valor", 2, align.Right),
	)
}

func inventoryDetailRow(p *entity.Product) core.Row {
	value := p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
	stockColor := colorGray
	if p.CurrentStock <= p.MinimumStock {
		stockColor = colorAlert
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.CurrentStock), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: stockColor,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinimumStock), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New("$"+p.SalePrice.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New("$"+value.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// lowStockHeaderRow: cabecera de la tabla del reporte de stock bajo.
func lowStockHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Producto", 4, align.Left),
		headerCell("Categoría", 2, align.Left),
		headerCell("Stock", 1, align.Center),
		headerCell("Mínimo", 1, align.Center),
		headerCell("Faltan", 1, align.Center),
		headerCell("Nivel", 3, align.Center),
	)
}

func lowStockDetailRow(p dto.LowStockProductDTO) core.Row {
	levelColor := colorGray
	if p.AlertLevel != "bajo" {
		levelColor = colorAlert
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(p.Category, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.CurrentStock), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinimumStock), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.MissingUnits), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: colorAlert,
		})),
		col.New(3).Add(text.New(p.AlertLevel, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: levelColor,
		})),
	)
}

// movementsHeaderRow: cabecera de la tabla del historial de movimientos.
func movementsHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Fecha", 2, align.Left),
		headerCell("Producto", 3, align.Left),
		headerCell("Tipo", 1, align.Center),
		headerCell("Cant.", 1, align.Center),
		headerCell("Anterior", 1, align.Center),
		headerCell("Nuevo", 1, align.Center),
		headerCell("Usuario", 3, align.Left),
	)
}

func movementDetailRow(m dto.MovementResponse) core.Row {
	kindColor := colorGray
	if m.Kind == "salida" {
		kindColor = colorAlert
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(m.CreatedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 7, Top: 1, Left: 1, Color: colorGray,
		})),
		col.New(3).Add(text.New(m.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(m.Kind, props.Text{
			Size: 7, Align: align.Center, Top: 1, Color: kindColor,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", m.Quantity), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", m.StockBefore), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: colorGray,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", m.StockAfter), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(3).Add(text.New(m.UserName, props.Text{Size: 8, Top: 1, Left: 1})),
	)
}

// totalsRow: bloque de totales del reporte general.
func totalsRow(products, totalStock int, totalValue decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Productos:"),
			label("Unidades en stock:"),
			label("Valor del inventario:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", products)),
			value(fmt.Sprintf("%d", totalStock)),
			value("$"+totalValue.StringFixed(2)),
		),
	)
}
