package repository

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve el producto solo si pertenece a companyID; nil si no.
	GetByID(ctx context.Context, companyID, id string) (*entity.Product, error)
	// GetForUpdate carga el producto bloqueando su fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; serializa órdenes concurrentes
	// sobre el mismo producto.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock fija el stock absoluto del producto.
	UpdateStock(ctx context.Context, companyID, id string, stock int) error
	// AdjustStock suma delta (puede ser negativo) al stock y devuelve el valor resultante.
	AdjustStock(ctx context.Context, companyID, id string, delta int) (int, error)
	// DecrementStock resta una unidad solo si el stock es positivo, piso y
	// decremento en la misma sentencia. Devuelve el stock resultante (el
	// vigente si ya estaba en el piso) o ErrNotFound si el producto no existe.
	DecrementStock(ctx context.Context, companyID, id string) (int, error)
	Delete(ctx context.Context, companyID, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, companyID, categoryID string) ([]*entity.Product, error)
	// Search busca por nombre de producto o de su categoría (icontains) dentro del tenant.
	Search(ctx context.Context, companyID, query string) ([]*entity.Product, error)
}
