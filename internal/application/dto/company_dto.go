package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartCompanyRequest entrada para fundar una empresa nueva.
type StartCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Address  string `json:"address" validate:"omitempty,max=300"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
	Industry string `json:"industry" validate:"omitempty,max=100"`
}

// JoinCompanyRequest entrada para pedir unirse a una empresa existente por nombre.
type JoinCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Industry  string    `json:"industry,omitempty"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StartCompanyResponse empresa creada más el token atado a ella.
type StartCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Token   string          `json:"token"`
}

// MembershipResponse membresía en respuestas, con datos del usuario.
type MembershipResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name,omitempty"`
	UserEmail string          `json:"user_email,omitempty"`
	Role      string          `json:"role"`
	Status    string          `json:"status"`
	Salary    decimal.Decimal `json:"salary"`
	JoinedAt  time.Time       `json:"joined_at"`
}

// ApproveMembershipRequest entrada para aprobar una solicitud pendiente.
type ApproveMembershipRequest struct {
	Role   string          `json:"role" validate:"required,oneof=Admin Manager Staff"`
	Salary decimal.Decimal `json:"salary"`
}

// UpdateMemberRequest entrada para cambiar rol o salario de un miembro aprobado.
type UpdateMemberRequest struct {
	Role   string          `json:"role" validate:"required,oneof=Admin Manager Staff"`
	Salary decimal.Decimal `json:"salary"`
}

// AddMemberRequest entrada para que un Admin incorpore personal por email.
// Si el email no está registrado se crea la cuenta, y en ese caso name y
// password son obligatorios.
type AddMemberRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Name     string          `json:"name" validate:"omitempty,min=1,max=200"`
	Password string          `json:"password" validate:"omitempty,min=8"`
	Role     string          `json:"role" validate:"required,oneof=Admin Manager Staff"`
	Salary   decimal.Decimal `json:"salary"`
}
