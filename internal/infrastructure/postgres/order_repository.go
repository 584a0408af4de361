package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera de una orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, customer_id, created_by, total_amount, total_profit, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CompanyID, o.CustomerID, o.CreatedBy, o.TotalAmount, o.TotalProfit, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID dentro de la empresa. Nil si no existe o pertenece a otra empresa.
func (r *OrderRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Order, error) {
	query := `
		SELECT id, company_id, customer_id, created_by, total_amount, total_profit, status, created_at
		FROM orders WHERE id = $1 AND company_id = $2`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&o.ID, &o.CompanyID, &o.CustomerID, &o.CreatedBy, &o.TotalAmount, &o.TotalProfit, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update actualiza cliente, totales y estado de la orden.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders SET customer_id = $3, total_amount = $4, total_profit = $5, status = $6
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, o.ID, o.CompanyID, o.CustomerID, o.TotalAmount, o.TotalProfit, o.Status)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina la orden. Las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// ListByCompany lista órdenes de la empresa, más recientes primero.
func (r *OrderRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Order, error) {
	query := `
		SELECT id, company_id, customer_id, created_by, total_amount, total_profit, status, created_at
		FROM orders WHERE company_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListPending lista órdenes pendientes de la empresa. Con createdBy no vacío
// filtra solo las creadas por ese usuario (vista de Staff).
func (r *OrderRepo) ListPending(ctx context.Context, companyID, createdBy string) ([]*entity.Order, error) {
	query := `
		SELECT id, company_id, customer_id, created_by, total_amount, total_profit, status, created_at
		FROM orders
		WHERE company_id = $1 AND status = $2 AND ($3 = '' OR created_by = $3)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, entity.StatusPending, createdBy)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// CreateItem persiste una línea de la orden.
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, selling_price, profit)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.SellingPrice, item.Profit,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// ListItems lista las líneas de una orden.
func (r *OrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, selling_price, profit
		FROM order_items WHERE order_id = $1`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.SellingPrice, &it.Profit); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItems borra todas las líneas de una orden (recreación en actualización).
func (r *OrderRepo) DeleteItems(ctx context.Context, orderID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.CustomerID, &o.CreatedBy, &o.TotalAmount, &o.TotalProfit, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
