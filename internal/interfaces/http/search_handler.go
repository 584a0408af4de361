package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/application/search"
	"github.com/jhoicas/crm-pyme/internal/domain"
)

// SearchHandler búsqueda global dentro de la empresa activa (protegido).
type SearchHandler struct {
	uc *search.UseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *search.UseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda global: productos, categorías y clientes
// @Tags         search
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "término de búsqueda"
// @Success      200  {object}  dto.SearchResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	resp, err := h.uc.Search(c.UserContext(), GetCompanyID(c), c.Query("q"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
