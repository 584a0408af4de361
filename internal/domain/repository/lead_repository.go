package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	// GetByID devuelve el lead solo si pertenece a companyID; nil si no.
	GetByID(ctx context.Context, companyID, id string) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, companyID, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Lead, error)
	// ListOpenByCompany devuelve leads en estado New o Contacted (elegibles para servicios).
	ListOpenByCompany(ctx context.Context, companyID string) ([]*entity.Lead, error)
}
