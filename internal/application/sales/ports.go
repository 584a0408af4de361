package sales

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción con los repos de
// órdenes y productos atados a ella. Todo el flujo de una orden (cabecera,
// líneas, stock, totales) corre dentro de una sola transacción: cualquier
// error deshace el conjunto.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptItem línea de la orden enriquecida con el nombre del producto
// para el comprobante.
type ReceiptItem struct {
	entity.OrderItem
	ProductName string
}

// ReceiptPDFGenerator genera el comprobante PDF de una orden.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(
		ctx context.Context,
		order *entity.Order,
		company *entity.Company,
		customer *entity.Customer,
		items []ReceiptItem,
	) ([]byte, error)
}
