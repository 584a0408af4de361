package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación para el dashboard. Solo lectura, siempre sobre el pool.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de agregados del dashboard.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountOrders cuenta las órdenes de la empresa.
func (r *AnalyticsRepo) CountOrders(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders WHERE company_id = $1`, companyID)
}

// CountCustomers cuenta los clientes de la empresa.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers WHERE company_id = $1`, companyID)
}

// CountPendingOrders cuenta las órdenes pendientes de la empresa.
func (r *AnalyticsRepo) CountPendingOrders(ctx context.Context, companyID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE company_id = $1 AND status = $2`,
		companyID, entity.StatusPending,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count pending orders: %w", err)
	}
	return n, nil
}

// CountOutOfStock cuenta los productos con stock agotado.
func (r *AnalyticsRepo) CountOutOfStock(ctx context.Context, companyID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE company_id = $1 AND stock <= 0`, companyID)
}

func (r *AnalyticsRepo) count(ctx context.Context, query, companyID string) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// OrdersByMonth devuelve el número de órdenes por mes (enero = índice 0) del año dado.
// Los meses sin órdenes quedan en cero.
func (r *AnalyticsRepo) OrdersByMonth(ctx context.Context, companyID string, year int) ([12]int, error) {
	var hist [12]int
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*)
		FROM orders
		WHERE company_id = $1 AND EXTRACT(YEAR FROM created_at) = $2
		GROUP BY month`
	rows, err := r.pool.Query(ctx, query, companyID, year)
	if err != nil {
		return hist, fmt.Errorf("orders by month: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var month, count int
		if err := rows.Scan(&month, &count); err != nil {
			return hist, fmt.Errorf("scan month row: %w", err)
		}
		if month >= 1 && month <= 12 {
			hist[month-1] = count
		}
	}
	return hist, rows.Err()
}
