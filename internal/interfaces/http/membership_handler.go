package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/application/usecase"
	"github.com/jhoicas/crm-pyme/internal/domain"
)

// MembershipHandler gestión del personal de la empresa (solo Admin).
type MembershipHandler struct {
	uc *usecase.MembershipUseCase
}

// NewMembershipHandler construye el handler.
func NewMembershipHandler(uc *usecase.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

// ListPending GET /api/memberships/pending
func (h *MembershipHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.uc.ListPending(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListMembers GET /api/memberships
func (h *MembershipHandler) ListMembers(c *fiber.Ctx) error {
	list, err := h.uc.ListMembers(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Approve godoc
// @Summary      Aprobar solicitud de ingreso asignando rol y salario
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la membresía"
// @Param        body  body  dto.ApproveMembershipRequest  true  "role, salary"
// @Success      200   {object}  dto.MembershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/memberships/{id}/approve [post]
func (h *MembershipHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveMembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Approve(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return membershipError(c, err)
	}
	return c.JSON(resp)
}

// Reject POST /api/memberships/:id/reject
func (h *MembershipHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return membershipError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateMember PUT /api/memberships/:id
func (h *MembershipHandler) UpdateMember(c *fiber.Ctx) error {
	var in dto.UpdateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateMember(c.UserContext(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return membershipError(c, err)
	}
	return c.JSON(resp)
}

// RemoveMember DELETE /api/memberships/:id
func (h *MembershipHandler) RemoveMember(c *fiber.Ctx) error {
	if err := h.uc.RemoveMember(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return membershipError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMember godoc
// @Summary      Incorporar personal como miembro aprobado (crea la cuenta si el email es nuevo)
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddMemberRequest  true  "email, name, password, role, salary"
// @Success      201   {object}  dto.MembershipResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/memberships [post]
func (h *MembershipHandler) AddMember(c *fiber.Ctx) error {
	var in dto.AddMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	resp, err := h.uc.AddMember(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el usuario ya tiene membresía en la empresa"})
		}
		return membershipError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func membershipError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "membresía no encontrada"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
