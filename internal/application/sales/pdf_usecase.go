package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// PDFUseCase genera el comprobante PDF de una orden de venta.
type PDFUseCase struct {
	orderRepo    repository.OrderRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    ReceiptPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:    orderRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadReceiptPDF recupera la orden con sus líneas, enriquece cada línea
// con el nombre del producto y genera el comprobante.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe en la empresa.
func (uc *PDFUseCase) DownloadReceiptPDF(ctx context.Context, companyID, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(ctx, companyID, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	rawItems, err := uc.orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	enriched := make([]ReceiptItem, 0, len(rawItems))
	for _, item := range rawItems {
		name := "Producto " + item.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(ctx, companyID, item.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, ReceiptItem{
			OrderItem:   *item,
			ProductName: name,
		})
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, company, customer, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("orden_%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
