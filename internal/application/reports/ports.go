package reports

import (
	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// ReportRenderer produce el documento binario de un reporte. Hay una
// implementación por formato (Excel y PDF) en infrastructure.
type ReportRenderer interface {
	// RenderInventory genera el reporte general de inventario.
	RenderInventory(products []*entity.Product) ([]byte, error)
	// RenderLowStock genera el reporte de productos con stock bajo.
	RenderLowStock(products []dto.LowStockProductDTO) ([]byte, error)
	// RenderMovements genera el historial de movimientos. period es la
	// etiqueta del rango de fechas, o vacío si no hubo filtro.
	RenderMovements(movements []dto.MovementResponse, period string) ([]byte, error)
}
