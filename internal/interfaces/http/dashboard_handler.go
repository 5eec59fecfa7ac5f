package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/analytics"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
)

// DashboardHandler maneja el resumen de la pantalla principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
