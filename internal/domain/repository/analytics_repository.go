package repository

import "context"

// DashboardCounts totales del tenant para el dashboard.
type DashboardCounts struct {
	TotalOrders    int
	TotalCustomers int
	PendingOrders  int
	OutOfStock     int // productos con stock <= 0
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountOrders devuelve el total de órdenes de la empresa.
	CountOrders(ctx context.Context, companyID string) (int, error)
	// CountCustomers devuelve el total de clientes de la empresa.
	CountCustomers(ctx context.Context, companyID string) (int, error)
	// CountPendingOrders devuelve las órdenes en estado Pending.
	CountPendingOrders(ctx context.Context, companyID string) (int, error)
	// CountOutOfStock devuelve los productos con stock <= 0.
	CountOutOfStock(ctx context.Context, companyID string) (int, error)
	// OrdersByMonth devuelve 12 buckets (enero..diciembre) con la cantidad de
	// órdenes creadas en cada mes del año indicado; meses sin órdenes valen 0.
	OrdersByMonth(ctx context.Context, companyID string, year int) ([12]int, error)
}
