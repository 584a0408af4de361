// Package search implementa la búsqueda global dentro de la empresa activa:
// productos, categorías y clientes en un solo viaje.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// UseCase búsqueda global tenant-scoped.
type UseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso de búsqueda.
func NewUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
) *UseCase {
	return &UseCase{productRepo: productRepo, categoryRepo: categoryRepo, customerRepo: customerRepo}
}

// Search ejecuta las tres búsquedas en paralelo y arma el resultado combinado.
// ErrInvalidInput si el término queda vacío tras recortar espacios.
func (uc *UseCase) Search(ctx context.Context, companyID, query string) (*dto.SearchResultDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}

	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type categoriesResult struct {
		items []*entity.Category
		err   error
	}
	type customersResult struct {
		items []*entity.Customer
		err   error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	customersCh := make(chan customersResult, 1)

	go func() {
		items, err := uc.productRepo.Search(ctx, companyID, query)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := uc.categoryRepo.Search(ctx, companyID, query)
		categoriesCh <- categoriesResult{items, err}
	}()
	go func() {
		items, err := uc.customerRepo.Search(ctx, companyID, query)
		customersCh <- customersResult{items, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	customers := <-customersCh

	if products.err != nil {
		return nil, fmt.Errorf("search: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("search: categorías: %w", categories.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("search: clientes: %w", customers.err)
	}

	result := &dto.SearchResultDTO{
		Query:      query,
		Products:   []dto.ProductResponse{},
		Categories: []dto.CategoryResponse{},
		Customers:  []dto.CustomerResponse{},
	}
	for _, p := range products.items {
		result.Products = append(result.Products, dto.ProductResponse{
			ID:              p.ID,
			CategoryID:      p.CategoryID,
			Name:            p.Name,
			SKU:             p.SKU,
			Source:          p.Source,
			SellingPrice:    p.SellingPrice,
			MinSellingPrice: p.MinSellingPrice,
			Stock:           p.Stock,
			OutOfStock:      p.OutOfStock(),
			ImageURL:        p.ImageURL,
			CreatedBy:       p.CreatedBy,
			CreatedAt:       p.CreatedAt,
		})
	}
	for _, c := range categories.items {
		result.Categories = append(result.Categories, dto.CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			ImageURL:  c.ImageURL,
			CreatedAt: c.CreatedAt,
		})
	}
	for _, c := range customers.items {
		result.Customers = append(result.Customers, dto.CustomerResponse{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Address:   c.Address,
			CreatedBy: c.CreatedBy,
			CreatedAt: c.CreatedAt,
		})
	}
	return result, nil
}
