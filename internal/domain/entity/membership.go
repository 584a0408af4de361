package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos dentro de una empresa. El rol es por membresía, no global al usuario.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleStaff   = "Staff"
)

// Estados del ciclo de vida de una membresía.
const (
	MembershipPending  = "Pending"
	MembershipApproved = "Approved"
	MembershipRejected = "Rejected"
)

// Membership asocia un usuario con una empresa: rol, estado y salario.
// Invariante: un usuario tiene a lo sumo una membresía por empresa (unique user+company).
// Solo las membresías Approved otorgan acceso al tenant.
type Membership struct {
	ID        string
	UserID    string
	CompanyID string
	Role      string // Admin, Manager, Staff
	Status    string // Pending, Approved, Rejected
	Salary    decimal.Decimal
	JoinedAt  time.Time
}

// ValidRole informa si s es uno de los roles cerrados del sistema.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleManager || s == RoleStaff
}
