package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// TenantMiddleware exige un token atado a una empresa y resuelve el rol
// efectivo consultando la membresía en base de datos en cada petición. Un rol
// cambiado o una membresía revocada surten efecto de inmediato aunque el token
// siga vigente.
func TenantMiddleware(membershipRepo repository.MembershipRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "seleccione una empresa"})
		}
		m, err := membershipRepo.GetByUserAndCompany(c.UserContext(), userID, companyID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if m == nil || m.Status != entity.MembershipApproved {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_COMPANY_ACCESS", Message: "sin acceso a la empresa"})
		}
		c.Locals(LocalRole, m.Role)
		return c.Next()
	}
}
