package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListApprovedByCompany devuelve los usuarios con membresía aprobada en la
	// empresa (candidatos a asignación de leads y servicios).
	ListApprovedByCompany(ctx context.Context, companyID string) ([]*entity.User, error)
}
