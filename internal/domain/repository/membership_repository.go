package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// MembershipRow membresía con los datos del usuario ya resueltos (para listados).
type MembershipRow struct {
	Membership entity.Membership
	UserName   string
	UserEmail  string
}

// MembershipRepository define el puerto de persistencia para Membership.
// Todas las consultas por empresa están acotadas al tenant.
type MembershipRepository interface {
	Create(ctx context.Context, m *entity.Membership) error
	// GetByID devuelve la membresía solo si pertenece a companyID; nil si no.
	GetByID(ctx context.Context, companyID, id string) (*entity.Membership, error)
	// GetByUserAndCompany devuelve la membresía (cualquier estado) o nil.
	GetByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Membership, error)
	// ListApprovedByUser devuelve las membresías Approved del usuario (selección de empresa al login).
	ListApprovedByUser(ctx context.Context, userID string) ([]*entity.Membership, error)
	// ListByCompany devuelve membresías de la empresa; status vacío = todas.
	ListByCompany(ctx context.Context, companyID, status string) ([]MembershipRow, error)
	Update(ctx context.Context, m *entity.Membership) error
	Delete(ctx context.Context, companyID, id string) error
}
