package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/inventory"
	"github.com/donpepe/inventario-api/internal/application/usecase"
)

// Cantidad de movimientos del panel cuando no se indica límite.
const defaultRecentMovements = 10

// DashboardHandler maneja las consultas agregadas del panel de control.
type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
	lowStock  *inventory.LowStockUseCase
	movements *inventory.MovementQueryUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	dashboard *usecase.DashboardUseCase,
	lowStock *inventory.LowStockUseCase,
	movements *inventory.MovementQueryUseCase,
) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, lowStock: lowStock, movements: movements}
}

// Stats godoc
// @Summary      Estadísticas generales del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/estadisticas [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.dashboard.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(stats)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  critico primero, luego muy_bajo, luego bajo; dentro de cada
//
//	nivel los más deficitarios primero.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockListResponse
// @Router       /api/dashboard/stock-bajo [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	resp, err := h.lowStock.GetLowStockProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(resp)
}

// RecentMovements godoc
// @Summary      Últimos movimientos registrados
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "cantidad de movimientos (por defecto 10)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/dashboard/ultimos-movimientos [get]
func (h *DashboardHandler) RecentMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limite")
	if limit <= 0 {
		limit = defaultRecentMovements
	}
	resp, err := h.movements.ListMovements(c.Context(), dto.ListMovementsRequest{Limit: limit})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(resp)
}

// WeeklySummary godoc
// @Summary      Resumen de movimientos de los últimos 7 días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WeeklySummaryResponse
// @Router       /api/dashboard/resumen-semanal [get]
func (h *DashboardHandler) WeeklySummary(c *fiber.Ctx) error {
	resp, err := h.dashboard.GetWeeklySummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(resp)
}

// IdleProducts godoc
// @Summary      Productos sin movimientos recientes
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "días sin movimiento (por defecto 30)"
// @Success      200   {object}  dto.IdleProductsResponse
// @Router       /api/dashboard/productos-sin-movimiento [get]
func (h *DashboardHandler) IdleProducts(c *fiber.Ctx) error {
	days := c.QueryInt("dias")
	resp, err := h.dashboard.GetIdleProducts(c.Context(), days)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(resp)
}

// ValueByCategory godoc
// @Summary      Valor del inventario por categoría
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryValueResponse
// @Router       /api/dashboard/valor-por-categoria [get]
func (h *DashboardHandler) ValueByCategory(c *fiber.Ctx) error {
	resp, err := h.dashboard.GetValueByCategory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	return c.JSON(resp)
}
