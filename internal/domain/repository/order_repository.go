package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Las líneas pertenecen en exclusiva a su orden (ON DELETE CASCADE).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve la orden solo si pertenece a companyID; nil si no.
	GetByID(ctx context.Context, companyID, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, companyID, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Order, error)
	// ListPending devuelve órdenes Pending; createdBy vacío = todas las de la empresa.
	ListPending(ctx context.Context, companyID, createdBy string) ([]*entity.Order, error)

	CreateItem(ctx context.Context, item *entity.OrderItem) error
	ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	DeleteItems(ctx context.Context, orderID string) error
}
