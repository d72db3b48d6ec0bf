package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/donpepe/inventario-api/internal/application/dto"
	"github.com/donpepe/inventario-api/internal/application/reports"
	"github.com/donpepe/inventario-api/internal/domain"
)

// ReportHandler sirve los reportes descargables en Excel y PDF.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryExcel godoc
// @Summary      Reporte de inventario en Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario/excel [get]
func (h *ReportHandler) InventoryExcel(c *fiber.Ctx) error {
	report, err := h.uc.InventoryExcel(c.Context())
	return h.send(c, report, err)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reportes/inventario/pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	report, err := h.uc.InventoryPDF(c.Context())
	return h.send(c, report, err)
}

// LowStockExcel godoc
// @Summary      Reporte de stock bajo en Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reportes/stock-bajo/excel [get]
func (h *ReportHandler) LowStockExcel(c *fiber.Ctx) error {
	report, err := h.uc.LowStockExcel(c.Context())
	return h.send(c, report, err)
}

// LowStockPDF godoc
// @Summary      Reporte de stock bajo en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/stock-bajo/pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	report, err := h.uc.LowStockPDF(c.Context())
	return h.send(c, report, err)
}

// MovementsExcel godoc
// @Summary      Historial de movimientos en Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD (día completo)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos/excel [get]
func (h *ReportHandler) MovementsExcel(c *fiber.Ctx) error {
	report, err := h.uc.MovementsExcel(c.Context(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	return h.send(c, report, err)
}

// MovementsPDF godoc
// @Summary      Historial de movimientos en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD (día completo)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos/pdf [get]
func (h *ReportHandler) MovementsPDF(c *fiber.Ctx) error {
	report, err := h.uc.MovementsPDF(c.Context(), c.Query("fecha_inicio"), c.Query("fecha_fin"))
	return h.send(c, report, err)
}

func (h *ReportHandler) send(c *fiber.Ctx, report *reports.Report, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "fecha inválida, formato esperado YYYY-MM-DD"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", "no hay productos para el reporte"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Send(report.Data)
}
