// Package excel implementa los reportes descargables en Excel con excelize.
package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/reports"
	"github.com/donpepe/inventario-api/internal/domain/entity"
)

var _ reports.ReportRenderer = (*ExcelizeReportRenderer)(nil)

// ExcelizeReportRenderer implementa reports.ReportRenderer usando excelize.
type ExcelizeReportRenderer struct {
	businessName string
}

// NewExcelizeReportRenderer construye el renderer con el nombre del negocio
// para el encabezado de los reportes.
func NewExcelizeReportRenderer(businessName string) *ExcelizeReportRenderer {
	return &ExcelizeReportRenderer{businessName: businessName}
}

// RenderInventory genera el reporte general de inventario.
func (g *ExcelizeReportRenderer) RenderInventory(products []*entity.Product) ([]byte, error) {
	const sheet = "Inventario"
	f, headerStyle, err := g.newWorkbook(sheet, "Reporte de Inventario")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	columns := []struct {
		title string
		width float64
	}{
		{"Producto", 32},
		{"Categoría", 18},
		{"Stock Actual", 12},
		{"Stock Mínimo", 12},
		{"Unidad", 10},
		{"Precio Costo", 14},
		{"Precio Venta", 14},
		{"Valor Total", 14},
		{"Estado", 10},
	}
	if err := g.writeHeader(f, sheet, columns[:], headerStyle); err != nil {
		return nil, err
	}

	totalStock := 0
	totalValue := decimal.Zero
	for i, p := range products {
		value := p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
		totalStock += p.CurrentStock
		totalValue = totalValue.Add(value)

		rowNum := i + 4
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		err := f.SetSheetRow(sheet, cell, &[]any{
			p.Name,
			p.Category,
			p.CurrentStock,
			p.MinimumStock,
			p.UnitMeasure,
			p.CostPrice.InexactFloat64(),
			p.SalePrice.InexactFloat64(),
			value.InexactFloat64(),
			p.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
		}
	}

	// Fila de totales al pie
	totalRow := len(products) + 5
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	err = f.SetSheetRow(sheet, cell, &[]any{
		"TOTALES", "", totalStock, "", "", "", "", totalValue.InexactFloat64(), "",
	})
	if err != nil {
		return nil, fmt.Errorf("excel: fila de totales: %w", err)
	}
	if err := g.applyStyle(f, sheet, totalRow, len(columns), headerStyle); err != nil {
		return nil, err
	}

	return g.bytes(f)
}

// RenderLowStock genera el reporte de productos con stock bajo.
func (g *ExcelizeReportRenderer) RenderLowStock(products []dto.LowStockProductDTO) ([]byte, error) {
	const sheet = "Stock Bajo"
	f, headerStyle, err := g.newWorkbook(sheet, "Reporte de Stock Bajo")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	columns := []struct {
		title string
		width float64
	}{
		{"Producto", 32},
		{"Categoría", 18},
		{"Stock Actual", 12},
		{"Stock Mínimo", 12},
		{"Faltan", 10},
		{"Unidad", 10},
		{"Precio Venta", 14},
		{"Nivel de Alerta", 16},
	}
	if err := g.writeHeader(f, sheet, columns[:], headerStyle); err != nil {
		return nil, err
	}

	for i, p := range products {
		rowNum := i + 4
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		err := f.SetSheetRow(sheet, cell, &[]any{
			p.Name,
			p.Category,
			p.CurrentStock,
			p.MinimumStock,
			p.MissingUnits,
			p.UnitMeasure,
			p.SalePrice.InexactFloat64(),
			p.AlertLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
		}
	}

	return g.bytes(f)
}

// RenderMovements genera el historial de movimientos del período.
func (g *ExcelizeReportRenderer) RenderMovements(movements []dto.MovementResponse, period string) ([]byte, error) {
	const sheet = "Movimientos"
	f, headerStyle, err := g.newWorkbook(sheet, "Reporte de Movimientos")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if period != "" {
		_ = f.SetCellValue(sheet, "A2", "Período: "+period)
	}

	columns := []struct {
		title string
		width float64
	}{
		{"Fecha", 18},
		{"Producto", 32},
		{"Tipo", 12},
		{"Cantidad", 10},
		{"Stock Anterior", 14},
		{"Stock Nuevo", 14},
		{"Usuario", 22},
		{"Motivo", 24},
	}
	if err := g.writeHeader(f, sheet, columns[:], headerStyle); err != nil {
		return nil, err
	}

	for i, m := range movements {
		reason := m.Reason
		if reason == "" {
			reason = "-"
		}
		rowNum := i + 4
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		err := f.SetSheetRow(sheet, cell, &[]any{
			m.CreatedAt.Format("02/01/2006 15:04"),
			m.ProductName,
			m.Kind,
			m.Quantity,
			m.StockBefore,
			m.StockAfter,
			m.UserName,
			reason,
		})
		if err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
		}
	}

	return g.bytes(f)
}

// newWorkbook crea el libro con la hoja, el título y el estilo de cabecera.
func (g *ExcelizeReportRenderer) newWorkbook(sheet, title string) (*excelize.File, int, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "8B4513"},
	})
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("excel: estilo de título: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"8B4513"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center", Vertical: "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	stamp := time.Now().Format("02/01/2006 15:04")
	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("%s - %s (%s)", g.businessName, title, stamp))
	_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	return f, headerStyle, nil
}

// writeHeader escribe la fila de cabecera (fila 3) y ajusta anchos de columna.
func (g *ExcelizeReportRenderer) writeHeader(f *excelize.File, sheet string, columns []struct {
	title string
	width float64
}, style int) error {
	for i, c := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, colName, colName, c.width); err != nil {
			return fmt.Errorf("excel: ancho de columna: %w", err)
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheet, cell, c.title); err != nil {
			return fmt.Errorf("excel: cabecera: %w", err)
		}
	}
	return g.applyStyle(f, sheet, 3, len(columns), style)
}

// applyStyle aplica un estilo a toda una fila hasta la columna n.
func (g *ExcelizeReportRenderer) applyStyle(f *excelize.File, sheet string, row, cols, style int) error {
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(cols, row)
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("excel: estilo de fila: %w", err)
	}
	return nil
}

func (g *ExcelizeReportRenderer) bytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
