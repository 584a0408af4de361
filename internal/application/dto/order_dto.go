package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de orden (producto, cantidad, precio de venta pactado).
type OrderItemRequest struct {
	ProductID    string          `json:"product_id" validate:"required,uuid"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	SellingPrice decimal.Decimal `json:"selling_price" validate:"required"`
}

// CreateOrderRequest body para POST /api/orders. Las líneas incompletas
// (sin producto, cantidad o precio) se descartan; si no queda ninguna válida
// la orden entera se rechaza.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	Items      []OrderItemRequest `json:"items" validate:"required"`
}

// UpdateOrderRequest body para PUT /api/orders/:id. Reemplaza todas las líneas:
// primero se restituye el stock de las anteriores y luego se recrean.
type UpdateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	Status     string             `json:"status" validate:"required,oneof=Pending Completed"`
	Items      []OrderItemRequest `json:"items" validate:"required"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Profit       decimal.Decimal `json:"profit"`
}

// OrderResponse orden con totales y líneas.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	CreatedBy   string              `json:"created_by"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	TotalProfit decimal.Decimal     `json:"total_profit"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}
