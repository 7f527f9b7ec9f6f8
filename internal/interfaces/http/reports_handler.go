package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/application/usecase"
)

// ReportsHandler entrega los reportes de inventario (protegido).
type ReportsHandler struct {
	uc *usecase.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *usecase.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de reportes
// @Description  Valorización total, top ítems, roll-up por categoría y proveedor, movimientos del mes.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportsSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportsHandler) Summary(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.uc.GetSummary(c.Context(), orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar inventario a CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "archivo CSV"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/export.csv [get]
func (h *ReportsHandler) ExportCSV(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	out, err := h.uc.ExportCSV(c.Context(), orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	return c.SendString(out.Content)
}

// ValuationPDF godoc
// @Summary      Reporte de valorización en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "documento PDF"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/valuation.pdf [get]
func (h *ReportsHandler) ValuationPDF(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "organization_id requerido"})
	}
	pdfBytes, err := h.uc.GenerateValuationPDF(c.Context(), orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="valuation-report.pdf"`)
	return c.Send(pdfBytes)
}
