package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden (y de un servicio). Transición manual Pending -> Completed.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// ValidOrderStatus indica si s pertenece al conjunto cerrado de estados de
// órdenes y servicios.
func ValidOrderStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}

// Order venta de la empresa con sus totales agregados.
// Invariante: TotalAmount == Σ item.SellingPrice×item.Quantity y
// TotalProfit == Σ item.Profit sobre las líneas vigentes.
type Order struct {
	ID          string
	CompanyID   string
	CustomerID  string
	CreatedBy   string
	TotalAmount decimal.Decimal
	TotalProfit decimal.Decimal
	Status      string // Pending, Completed
	CreatedAt   time.Time
}

// OrderItem línea de una orden; pertenece exclusivamente a ella (cascade).
// Profit = (SellingPrice - costo) × Quantity, con costo = CostPrice() del producto.
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	Quantity     int // >= 1
	SellingPrice decimal.Decimal
	Profit       decimal.Decimal
}
