package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Según source aplica buying_price (Bought) o manufacture_price (Manufactured).
type CreateProductRequest struct {
	CategoryID       string           `json:"category_id" validate:"required,uuid"`
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	SKU              string           `json:"sku" validate:"omitempty,max=100"`
	Source           string           `json:"source" validate:"required,oneof=Bought Manufactured"`
	BuyingPrice      *decimal.Decimal `json:"buying_price,omitempty"`
	ManufacturePrice *decimal.Decimal `json:"manufacture_price,omitempty"`
	SellingPrice     decimal.Decimal  `json:"selling_price" validate:"required"`
	MinSellingPrice  decimal.Decimal  `json:"min_selling_price" validate:"required"`
	Stock            int              `json:"stock" validate:"min=0"`
	Specifications   string           `json:"specifications" validate:"omitempty,max=2000"`
	ImageURL         string           `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest body para PUT /api/products/:id (no toca el stock).
type UpdateProductRequest struct {
	CategoryID       string           `json:"category_id" validate:"required,uuid"`
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	SKU              string           `json:"sku" validate:"omitempty,max=100"`
	Source           string           `json:"source" validate:"required,oneof=Bought Manufactured"`
	BuyingPrice      *decimal.Decimal `json:"buying_price,omitempty"`
	ManufacturePrice *decimal.Decimal `json:"manufacture_price,omitempty"`
	SellingPrice     decimal.Decimal  `json:"selling_price" validate:"required"`
	MinSellingPrice  decimal.Decimal  `json:"min_selling_price" validate:"required"`
	Specifications   string           `json:"specifications" validate:"omitempty,max=2000"`
	ImageURL         string           `json:"image_url" validate:"omitempty,url"`
}

// SetStockRequest body para PUT /api/products/:id/stock.
type SetStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID               string           `json:"id"`
	CategoryID       string           `json:"category_id"`
	Name             string           `json:"name"`
	SKU              string           `json:"sku,omitempty"`
	Source           string           `json:"source"`
	BuyingPrice      *decimal.Decimal `json:"buying_price,omitempty"`
	ManufacturePrice *decimal.Decimal `json:"manufacture_price,omitempty"`
	SellingPrice     decimal.Decimal  `json:"selling_price"`
	MinSellingPrice  decimal.Decimal  `json:"min_selling_price"`
	Stock            int              `json:"stock"`
	OutOfStock       bool             `json:"out_of_stock"`
	Specifications   string           `json:"specifications,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	CreatedBy        string           `json:"created_by"`
	CreatedAt        time.Time        `json:"created_at"`
}

// StockResponse respuesta de los ajustes rápidos de stock (+1 / -1).
type StockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}
