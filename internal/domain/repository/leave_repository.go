package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// LeaveRepository define el puerto de persistencia para Leave.
type LeaveRepository interface {
	Create(ctx context.Context, leave *entity.Leave) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Leave, error)
	UpdateStatus(ctx context.Context, companyID, id, status string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Leave, error)
	// ListByUser devuelve las solicitudes del propio usuario dentro de la empresa.
	ListByUser(ctx context.Context, companyID, userID string) ([]*entity.Leave, error)
}
