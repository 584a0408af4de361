package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase flujo de órdenes de venta: creación, actualización y borrado
// con descuento y restitución de inventario, todo transaccional.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	txRunner     TxRunner
}

// NewOrderUseCase construye el caso de uso con los puertos de persistencia.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	txRunner TxRunner,
) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, customerRepo: customerRepo, txRunner: txRunner}
}

// Create crea una orden con sus líneas y descuenta el stock, todo dentro de
// una transacción. Las líneas incompletas se descartan en silencio; si no
// queda ninguna válida se devuelve ErrEmptyOrder y no se persiste nada.
// Para roles distintos de Admin, un precio de venta por debajo del mínimo del
// producto aborta la orden completa con ErrPriceBelowMinimum.
func (uc *OrderUseCase) Create(ctx context.Context, companyID, userID, role string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, companyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	order := &entity.Order{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CustomerID:  in.CustomerID,
		CreatedBy:   userID,
		TotalAmount: decimal.Zero,
		TotalProfit: decimal.Zero,
		Status:      entity.StatusPending,
		CreatedAt:   time.Now(),
	}

	var items []*entity.OrderItem
	err = uc.txRunner.RunSales(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		items, err = uc.applyItems(ctx, orderRepo, productRepo, order, role, in.Items)
		if err != nil {
			return err
		}
		return orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order, items)
	return &resp, nil
}

// Update reemplaza las líneas de una orden: restituye el stock de las
// anteriores, las borra y aplica las nuevas, recalculando totales. Si ninguna
// línea nueva es válida, la transacción completa se revierte y la orden queda
// como estaba.
func (uc *OrderUseCase) Update(ctx context.Context, companyID, role, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(ctx, companyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	var (
		order *entity.Order
		items []*entity.OrderItem
	)
	err = uc.txRunner.RunSales(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		order, err = orderRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if err := restoreStock(ctx, orderRepo, productRepo, order); err != nil {
			return err
		}
		if err := orderRepo.DeleteItems(ctx, order.ID); err != nil {
			return err
		}
		order.CustomerID = in.CustomerID
		order.Status = in.Status
		order.TotalAmount = decimal.Zero
		order.TotalProfit = decimal.Zero
		items, err = uc.applyItems(ctx, orderRepo, productRepo, order, role, in.Items)
		if err != nil {
			return err
		}
		return orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order, items)
	return &resp, nil
}

// Delete elimina la orden restituyendo el stock de todas sus líneas.
func (uc *OrderUseCase) Delete(ctx context.Context, companyID, id string) error {
	return uc.txRunner.RunSales(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		order, err := orderRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if err := restoreStock(ctx, orderRepo, productRepo, order); err != nil {
			return err
		}
		return orderRepo.Delete(ctx, companyID, id)
	})
}

// GetByID obtiene una orden con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(order, items)
	return &resp, nil
}

// List lista las órdenes de la empresa sin líneas.
func (uc *OrderUseCase) List(ctx context.Context, companyID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListPending lista órdenes pendientes. Staff solo ve las que creó.
func (uc *OrderUseCase) ListPending(ctx context.Context, companyID, role, userID string) ([]dto.OrderResponse, error) {
	createdBy := ""
	if role == entity.RoleStaff {
		createdBy = userID
	}
	orders, err := uc.orderRepo.ListPending(ctx, companyID, createdBy)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// applyItems aplica las líneas a la orden: bloquea cada producto, valida el
// piso de precio, calcula utilidad, descuenta stock y acumula totales sobre
// la cabecera. Devuelve las líneas creadas.
func (uc *OrderUseCase) applyItems(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	order *entity.Order,
	role string,
	in []dto.OrderItemRequest,
) ([]*entity.OrderItem, error) {
	var items []*entity.OrderItem
	for _, line := range in {
		// líneas incompletas del formulario se descartan
		if line.ProductID == "" || line.Quantity <= 0 || line.SellingPrice.IsZero() {
			continue
		}
		product, err := productRepo.GetForUpdate(ctx, order.CompanyID, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if role != entity.RoleAdmin && line.SellingPrice.LessThan(product.MinSellingPrice) {
			return nil, domain.ErrPriceBelowMinimum
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		profit := line.SellingPrice.Sub(product.CostPrice()).Mul(qty)
		item := &entity.OrderItem{
			ID:           uuid.New().String(),
			OrderID:      order.ID,
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			SellingPrice: line.SellingPrice,
			Profit:       profit,
		}
		if err := orderRepo.CreateItem(ctx, item); err != nil {
			return nil, err
		}
		// las ventas sí pueden dejar el stock negativo
		if _, err := productRepo.AdjustStock(ctx, order.CompanyID, line.ProductID, -line.Quantity); err != nil {
			return nil, err
		}
		order.TotalAmount = order.TotalAmount.Add(line.SellingPrice.Mul(qty))
		order.TotalProfit = order.TotalProfit.Add(profit)
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	return items, nil
}

// restoreStock devuelve al inventario las cantidades de todas las líneas de la orden.
func restoreStock(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	order *entity.Order,
) error {
	items, err := orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if _, err := productRepo.AdjustStock(ctx, order.CompanyID, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		CreatedBy:   o.CreatedBy,
		TotalAmount: o.TotalAmount,
		TotalProfit: o.TotalProfit,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SellingPrice: item.SellingPrice,
			Profit:       item.Profit,
		})
	}
	return resp
}

func toOrderResponses(orders []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o, nil))
	}
	return out
}
