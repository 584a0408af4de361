package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen del producto.
const (
	SourceBought       = "Bought"
	SourceManufactured = "Manufactured"
)

// Product SKU del inventario de una empresa.
//
// Stock solo se muta por el flujo de órdenes (líneas restan, restauraciones
// suman) y por los endpoints explícitos ±1 / ajuste directo. El decremento
// explícito nunca baja de cero; las líneas de orden sí pueden dejarlo negativo
// para que la sobreventa quede visible en el inventario.
type Product struct {
	ID               string
	CompanyID        string
	CategoryID       string
	Name             string
	SKU              string
	Source           string           // Bought, Manufactured
	BuyingPrice      *decimal.Decimal // nil si es manufacturado
	ManufacturePrice *decimal.Decimal // nil si es comprado
	SellingPrice     decimal.Decimal
	MinSellingPrice  decimal.Decimal // piso de precio para roles no-Admin
	Stock            int
	Specifications   string
	ImageURL         string
	CreatedBy        string
	CreatedAt        time.Time
}

// ValidSource reporta si source es un origen conocido.
func ValidSource(source string) bool {
	return source == SourceBought || source == SourceManufactured
}

// OutOfStock deriva la disponibilidad: stock <= 0.
func (p *Product) OutOfStock() bool {
	return p.Stock <= 0
}

// CostPrice devuelve el costo usado para calcular utilidad:
// buying_price si existe, si no manufacture_price, si no 0.
func (p *Product) CostPrice() decimal.Decimal {
	if p.BuyingPrice != nil {
		return *p.BuyingPrice
	}
	if p.ManufacturePrice != nil {
		return *p.ManufacturePrice
	}
	return decimal.Zero
}
