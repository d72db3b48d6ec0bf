package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/inventory"
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
	"github.com/donpepe/inventario-api/internal/domain/repository"
)

// Report documento generado listo para descargar.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

const (
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF   = "application/pdf"
)

// ReportUseCase genera los reportes descargables de inventario, stock bajo y
// movimientos en Excel y PDF.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	lowStock     *inventory.LowStockUseCase
	excel        ReportRenderer
	pdf          ReportRenderer
}

// NewReportUseCase construye el caso de uso con un renderer por formato.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	lowStock *inventory.LowStockUseCase,
	excel ReportRenderer,
	pdf ReportRenderer,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		lowStock:     lowStock,
		excel:        excel,
		pdf:          pdf,
	}
}

// InventoryExcel genera el reporte general de inventario en Excel.
func (uc *ReportUseCase) InventoryExcel(ctx context.Context) (*Report, error) {
	products, err := uc.activeProducts(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.excel.RenderInventory(products)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario excel: %w", err)
	}
	return &Report{
		Filename:    stampedFilename("inventario", "xlsx"),
		ContentType: contentTypeExcel,
		Data:        data,
	}, nil
}

// InventoryPDF genera el reporte general de inventario en PDF.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) (*Report, error) {
	products, err := uc.activeProducts(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.RenderInventory(products)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario pdf: %w", err)
	}
	return &Report{
		Filename:    stampedFilename("inventario", "pdf"),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

// LowStockExcel genera el reporte de stock bajo en Excel. Una lista vacía es
// válida: se entrega el documento solo con cabeceras.
func (uc *ReportUseCase) LowStockExcel(ctx context.Context) (*Report, error) {
	list, err := uc.lowStock.GetLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.excel.RenderLowStock(list.Products)
	if err != nil {
		return nil, fmt.Errorf("reporte de stock bajo excel: %w", err)
	}
	return &Report{
		Filename:    stampedFilename("stock-bajo", "xlsx"),
		ContentType: contentTypeExcel,
		Data:        data,
	}, nil
}

// LowStockPDF genera el reporte de stock bajo en PDF.
func (uc *ReportUseCase) LowStockPDF(ctx context.Context) (*Report, error) {
	list, err := uc.lowStock.GetLowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.RenderLowStock(list.Products)
	if err != nil {
		return nil, fmt.Errorf("reporte de stock bajo pdf: %w", err)
	}
	return &Report{
		Filename:    stampedFilename("stock-bajo", "pdf"),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

// MovementsExcel genera el historial de movimientos en Excel. Las fechas
// acotan por día calendario inclusive; vacías significan sin filtro.
func (uc *ReportUseCase) MovementsExcel(ctx context.Context, from, to string) (*Report, error) {
	movements, period, err := uc.movementsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	data, err := uc.excel.RenderMovements(movements, period)
	if err != nil {
		return nil, fmt.Errorf("reporte de movimientos excel: %w", err)
	}
	return &Report{
		Filename:    stampedFilename("movimientos", "xlsx"),
		ContentType: contentTypeExcel,
		Data:        data,
	}, nil
}

// MovementsPDF genera el historial de movimientos en PDF.
func (uc *ReportUseCase) MovementsPDF(ctx context.Context, from, to string) (*Report, error) {
	movements, period, err := uc.movementsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	data, err := uc.pdf.RenderMovements(movements, period)
	if err != nil {
		return nil, fmt.Errorf("reporte de movimientos pdf: %w", err)
	}
	return &Report{
		Filename:    stampedFilename("movimientos", "pdf"),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

const dateLayout = "2006-01-02"

// movementsInRange trae el historial completo del rango (sin tope: el reporte
// no pagina) y arma la etiqueta del período para el encabezado.
func (uc *ReportUseCase) movementsInRange(ctx context.Context, from, to string) ([]dto.MovementResponse, string, error) {
	var filter repository.MovementFilter
	if from != "" {
		t, err := time.ParseInLocation(dateLayout, from, time.Local)
		if err != nil {
			return nil, "", domain.ErrInvalidInput
		}
		filter.From = &t
	}
	if to != "" {
		t, err := time.ParseInLocation(dateLayout, to, time.Local)
		if err != nil {
			return nil, "", domain.ErrInvalidInput
		}
		endOfDay := t.Add(24*time.Hour - time.Nanosecond)
		filter.To = &endOfDay
	}

	list, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("movimientos para reporte: %w", err)
	}

	movements := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		movements = append(movements, inventory.ToMovementResponse(m))
	}
	return movements, periodLabel(from, to), nil
}

// periodLabel arma la etiqueta del rango, "Inicio"/"Hoy" para los extremos abiertos.
func periodLabel(from, to string) string {
	if from == "" && to == "" {
		return ""
	}
	if from == "" {
		from = "Inicio"
	}
	if to == "" {
		to = "Hoy"
	}
	return from + " - " + to
}

func (uc *ReportUseCase) activeProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{
		Status: entity.ProductStatusActivo,
	})
	if err != nil {
		return nil, fmt.Errorf("productos para reporte: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return products, nil
}

func stampedFilename(base, ext string) string {
	return fmt.Sprintf("reporte-%s-%s.%s", base, time.Now().Format("2006-01-02"), ext)
}
