package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// ProductUseCase casos de uso de productos e inventario.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso con los puertos de persistencia.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create crea un producto en la empresa activa. La categoría debe pertenecer a
// la misma empresa; si no, ErrNotFound.
func (uc *ProductUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidSource(in.Source) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, companyID, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	p := &entity.Product{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		CategoryID:       in.CategoryID,
		Name:             in.Name,
		SKU:              in.SKU,
		Source:           in.Source,
		BuyingPrice:      in.BuyingPrice,
		ManufacturePrice: in.ManufacturePrice,
		SellingPrice:     in.SellingPrice,
		MinSellingPrice:  in.MinSellingPrice,
		Stock:            in.Stock,
		Specifications:   in.Specifications,
		ImageURL:         in.ImageURL,
		CreatedBy:        userID,
		CreatedAt:        time.Now(),
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// GetByID obtiene un producto. Devuelve ErrNotFound si no existe en la empresa.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Update actualiza los datos de un producto sin tocar el stock.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidSource(in.Source) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categoryRepo.GetByID(ctx, companyID, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	p.CategoryID = in.CategoryID
	p.Name = in.Name
	p.SKU = in.SKU
	p.Source = in.Source
	p.BuyingPrice = in.BuyingPrice
	p.ManufacturePrice = in.ManufacturePrice
	p.SellingPrice = in.SellingPrice
	p.MinSellingPrice = in.MinSellingPrice
	p.Specifications = in.Specifications
	p.ImageURL = in.ImageURL
	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// SetStock fija el stock en un valor absoluto.
func (uc *ProductUseCase) SetStock(ctx context.Context, companyID, id string, stock int) (*dto.StockResponse, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.productRepo.UpdateStock(ctx, companyID, id, stock); err != nil {
		return nil, err
	}
	return &dto.StockResponse{ProductID: id, Stock: stock}, nil
}

// IncreaseStock suma una unidad al stock.
func (uc *ProductUseCase) IncreaseStock(ctx context.Context, companyID, id string) (*dto.StockResponse, error) {
	stock, err := uc.productRepo.AdjustStock(ctx, companyID, id, 1)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ProductID: id, Stock: stock}, nil
}

// DecreaseStock resta una unidad al stock sin bajar de cero. Piso y decremento
// van en la misma sentencia para que dos peticiones concurrentes sobre stock=1
// no lo dejen negativo.
func (uc *ProductUseCase) DecreaseStock(ctx context.Context, companyID, id string) (*dto.StockResponse, error) {
	stock, err := uc.productRepo.DecrementStock(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ProductID: id, Stock: stock}, nil
}

// Delete elimina un producto de la empresa.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	p, err := uc.productRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, companyID, id)
}

// List lista productos de la empresa; con categoryID filtra por categoría.
func (uc *ProductUseCase) List(ctx context.Context, companyID, categoryID string) ([]dto.ProductResponse, error) {
	var (
		products []*entity.Product
		err      error
	)
	if categoryID != "" {
		products, err = uc.productRepo.ListByCategory(ctx, companyID, categoryID)
	} else {
		products, err = uc.productRepo.ListByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		CategoryID:       p.CategoryID,
		Name:             p.Name,
		SKU:              p.SKU,
		Source:           p.Source,
		BuyingPrice:      p.BuyingPrice,
		ManufacturePrice: p.ManufacturePrice,
		SellingPrice:     p.SellingPrice,
		MinSellingPrice:  p.MinSellingPrice,
		Stock:            p.Stock,
		OutOfStock:       p.OutOfStock(),
		Specifications:   p.Specifications,
		ImageURL:         p.ImageURL,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
	}
}
