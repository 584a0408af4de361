package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve el cliente solo si pertenece a companyID; nil si no.
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
	// GetByEmail busca por email exacto dentro del tenant (deduplicación de conversión).
	GetByEmail(ctx context.Context, companyID, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, companyID, id string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error)
	// Search busca por nombre, email, teléfono o dirección (icontains) dentro del tenant.
	Search(ctx context.Context, companyID, query string) ([]*entity.Customer, error)
}
