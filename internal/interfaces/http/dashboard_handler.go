package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/billing-pro/internal/application/analytics"
)

// DashboardHandler maneja las peticiones del dashboard de facturación.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats devuelve las estadísticas agregadas de la empresa del token.
// Un Super Admin puede pedir otra empresa con ?company_id=.
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context(), GetPrincipal(c), c.Query("company_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
