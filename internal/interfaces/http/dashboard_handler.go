package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pyme/internal/application/analytics"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
)

// DashboardHandler maneja el tablero de la empresa (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Dashboard de la empresa: contadores e histograma mensual
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        year  query  int  false  "año del histograma (default: actual)"
// @Success      200   {object}  dto.DashboardDTO
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	resp, err := h.uc.GetDashboard(c.UserContext(), GetCompanyID(c), GetRole(c), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
