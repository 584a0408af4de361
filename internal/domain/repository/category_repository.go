package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, companyID, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Category, error)
	Search(ctx context.Context, companyID, query string) ([]*entity.Category, error)
}
