package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByName busca por nombre sin distinguir mayúsculas (flujo de unirse a empresa).
	GetByName(ctx context.Context, name string) (*entity.Company, error)
}
