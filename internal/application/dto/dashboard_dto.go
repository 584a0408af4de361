package dto

// DashboardRequest parámetros de GET /api/dashboard.
type DashboardRequest struct {
	Year int `query:"year"` // por defecto el año actual
}

// DashboardDTO respuesta de GET /api/dashboard: contadores globales de la
// empresa más el histograma de órdenes por mes del año pedido.
type DashboardDTO struct {
	CompanyName    string   `json:"company_name"`
	Role           string   `json:"role"` // rol efectivo del usuario en la empresa
	TotalOrders    int      `json:"total_orders"`
	TotalCustomers int      `json:"total_customers"`
	PendingOrders  int      `json:"pending_orders"`
	OutOfStock     int      `json:"out_of_stock"`
	Year           int      `json:"year"`
	YearOptions    []int    `json:"year_options"` // los 5 años más recientes
	OrdersByMonth  [12]int  `json:"orders_by_month"`
	MonthLabels    []string `json:"month_labels"`
}
