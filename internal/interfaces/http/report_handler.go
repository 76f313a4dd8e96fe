package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/billing-pro/internal/application/reports"
)

// ReportHandler maneja la descarga de reportes.
type ReportHandler struct {
	uc *reports.SalesReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.SalesReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales genera el reporte de ventas por cliente en PDF o hoja de cálculo.
// GET /api/reports/sales?format=pdf|xml&company_id=
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	data, filename, contentType, err := h.uc.Generate(
		c.Context(),
		GetPrincipal(c),
		c.Query("company_id"),
		c.Query("format", reports.FormatPDF),
	)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
