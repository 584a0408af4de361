package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/application/usecase"
	"github.com/jhoicas/crm-pyme/internal/domain"
)

// LeaveHandler maneja las peticiones HTTP de permisos (protegido).
type LeaveHandler struct {
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler.
func NewLeaveHandler(uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Apply POST /api/leaves
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyLeaveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LeaveType == "" || in.StartDate == "" || in.EndDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "leave_type, start_date y end_date son requeridos"})
	}
	resp, err := h.uc.Apply(c.UserContext(), GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return leaveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/leaves (Admin/Manager ven todas, Staff solo las propias)
func (h *LeaveHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetCompanyID(c), GetRole(c), GetUserID(c))
	if err != nil {
		return leaveError(c, err)
	}
	return c.JSON(list)
}

// Approve POST /api/leaves/:id/approve
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return leaveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reject POST /api/leaves/:id/reject
func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return leaveError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func leaveError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas o solicitud ya resuelta"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
