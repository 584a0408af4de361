package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, companyID, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Service, error)
	// ListCompleted devuelve servicios Completed; createdBy vacío = todos los de la empresa.
	ListCompleted(ctx context.Context, companyID, createdBy string) ([]*entity.Service, error)
}
