package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/application/sales"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA   = "company-a"
	companyB   = "company-b"
	sellerID   = "user-seller"
	customerID = "customer-1"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, companyID, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Product, error) {
	return r.GetByID(ctx, companyID, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, companyID, id string, stock int) error {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, companyID, id string, delta int) (int, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return 0, domain.ErrNotFound
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, companyID, id string) (int, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return 0, domain.ErrNotFound
	}
	if p.Stock > 0 {
		p.Stock--
	}
	return p.Stock, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, _, _ string) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Search(_ context.Context, _, _ string) ([]*entity.Product, error) {
	return nil, nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem // por orderID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: map[string]*entity.Order{},
		items:  map[string][]*entity.OrderItem{},
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, companyID, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.CompanyID != companyID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListPending(_ context.Context, companyID, createdBy string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CompanyID != companyID || o.Status != entity.StatusPending {
			continue
		}
		if createdBy != "" && o.CreatedBy != createdBy {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) CreateItem(_ context.Context, item *entity.OrderItem) error {
	cp := *item
	r.items[item.OrderID] = append(r.items[item.OrderID], &cp)
	return nil
}

func (r *fakeOrderRepo) ListItems(_ context.Context, orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, item := range r.items[orderID] {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrderRepo) DeleteItems(_ context.Context, orderID string) error {
	delete(r.items, orderID)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, companyID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, companyID, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, _, _ string) ([]*entity.Customer, error) {
	return nil, nil
}

// fakeSalesTx emula la semántica transaccional de RunSales: toma un snapshot
// del estado de órdenes y productos antes del callback y lo restaura si el
// callback falla, para poder verificar el rollback en los tests.
type fakeSalesTx struct {
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
}

func (tx *fakeSalesTx) RunSales(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	ordersSnap := map[string]*entity.Order{}
	for id, o := range tx.orderRepo.orders {
		cp := *o
		ordersSnap[id] = &cp
	}
	itemsSnap := map[string][]*entity.OrderItem{}
	for id, items := range tx.orderRepo.items {
		cps := make([]*entity.OrderItem, 0, len(items))
		for _, item := range items {
			cp := *item
			cps = append(cps, &cp)
		}
		itemsSnap[id] = cps
	}
	productsSnap := map[string]*entity.Product{}
	for id, p := range tx.productRepo.products {
		cp := *p
		productsSnap[id] = &cp
	}

	if err := fn(tx.orderRepo, tx.productRepo); err != nil {
		tx.orderRepo.orders = ordersSnap
		tx.orderRepo.items = itemsSnap
		tx.productRepo.products = productsSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type orderFixture struct {
	uc        *sales.OrderUseCase
	orders    *fakeOrderRepo
	products  *fakeProductRepo
	customers *fakeCustomerRepo
}

func newOrderFixture() *orderFixture {
	orders := newFakeOrderRepo()
	products := newFakeProductRepo()
	customers := newFakeCustomerRepo()
	customers.customers[customerID] = &entity.Customer{
		ID: customerID, CompanyID: companyA, Name: "Cliente Uno",
	}
	tx := &fakeSalesTx{orderRepo: orders, productRepo: products}
	return &orderFixture{
		uc:        sales.NewOrderUseCase(orders, customers, tx),
		orders:    orders,
		products:  products,
		customers: customers,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// producto comprado: costo 60, venta 100, mínimo 80, stock 10
func (f *orderFixture) addBoughtProduct(id string) {
	f.products.products[id] = &entity.Product{
		ID:              id,
		CompanyID:       companyA,
		Name:            "Producto " + id,
		Source:          entity.SourceBought,
		BuyingPrice:     decPtr("60"),
		SellingPrice:    dec("100"),
		MinSellingPrice: dec("80"),
		Stock:           10,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CalculaTotalesYDescuentaStock(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")
	f.addBoughtProduct("p2")

	resp, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2, SellingPrice: dec("100")},
			{ProductID: "p2", Quantity: 1, SellingPrice: dec("90")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	// total = 2×100 + 1×90; utilidad = 2×(100-60) + 1×(90-60)
	assert.True(t, resp.TotalAmount.Equal(dec("290")), "total esperado 290, fue %s", resp.TotalAmount)
	assert.True(t, resp.TotalProfit.Equal(dec("110")), "utilidad esperada 110, fue %s", resp.TotalProfit)
	assert.Equal(t, entity.StatusPending, resp.Status)

	assert.Equal(t, 8, f.products.products["p1"].Stock, "p1 debe descontar 2 unidades")
	assert.Equal(t, 9, f.products.products["p2"].Stock, "p2 debe descontar 1 unidad")
}

func TestOrderCreate_InvarianteTotales(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	resp, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 3, SellingPrice: dec("95.50")},
		},
	})
	require.NoError(t, err)

	sumAmount := decimal.Zero
	sumProfit := decimal.Zero
	for _, item := range resp.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		sumAmount = sumAmount.Add(item.SellingPrice.Mul(qty))
		sumProfit = sumProfit.Add(item.Profit)
	}
	assert.True(t, resp.TotalAmount.Equal(sumAmount), "TotalAmount debe ser la suma de las líneas")
	assert.True(t, resp.TotalProfit.Equal(sumProfit), "TotalProfit debe ser la suma de utilidades")
}

func TestOrderCreate_UtilidadUsaPrecioDeManufactura(t *testing.T) {
	f := newOrderFixture()
	f.products.products["pm"] = &entity.Product{
		ID:               "pm",
		CompanyID:        companyA,
		Name:             "Manufacturado",
		Source:           entity.SourceManufactured,
		ManufacturePrice: decPtr("40"),
		SellingPrice:     dec("100"),
		MinSellingPrice:  dec("50"),
		Stock:            5,
	}

	resp, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "pm", Quantity: 1, SellingPrice: dec("100")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalProfit.Equal(dec("60")), "sin buying_price el costo es manufacture_price")
}

func TestOrderCreate_DescartaLineasIncompletas(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	resp, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemRequest{
			{ProductID: "", Quantity: 1, SellingPrice: dec("100")},  // sin producto
			{ProductID: "p1", Quantity: 0, SellingPrice: dec("90")}, // sin cantidad
			{ProductID: "p1", Quantity: 1},                          // sin precio
			{ProductID: "p1", Quantity: 2, SellingPrice: dec("100")},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1, "solo la línea completa debe persistirse")
	assert.Equal(t, 8, f.products.products["p1"].Stock)
}

func TestOrderCreate_SinLineasValidas_RevierteTodo(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	_, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemRequest{
			{ProductID: "", Quantity: 1, SellingPrice: dec("100")},
			{ProductID: "p1", Quantity: 0, SellingPrice: dec("100")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	assert.Empty(t, f.orders.orders, "la cabecera no debe quedar persistida")
	assert.Equal(t, 10, f.products.products["p1"].Stock, "el stock no debe cambiar")
}

func TestOrderCreate_PrecioBajoMinimo_NoAdmin_AbortaOrdenCompleta(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")
	f.addBoughtProduct("p2")

	_, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleStaff, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 1, SellingPrice: dec("100")}, // válida
			{ProductID: "p2", Quantity: 1, SellingPrice: dec("79")},  // bajo el mínimo de 80
		},
	})
	assert.ErrorIs(t, err, domain.ErrPriceBelowMinimum)
	assert.Empty(t, f.orders.orders, "nada debe persistirse si una línea viola el piso")
	assert.Equal(t, 10, f.products.products["p1"].Stock, "la línea válida también se revierte")
}

func TestOrderCreate_AdminPuedeVenderBajoElMinimo(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	resp, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1, SellingPrice: dec("70")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalAmount.Equal(dec("70")))
}

func TestOrderCreate_PuedeDejarStockNegativo(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")
	f.products.products["p1"].Stock = 3

	_, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 5, SellingPrice: dec("100")}},
	})
	require.NoError(t, err)
	assert.Equal(t, -2, f.products.products["p1"].Stock, "la venta puede dejar el stock en negativo")
}

func TestOrderCreate_ClienteDeOtraEmpresa_NotFound(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")
	f.customers.customers["ajeno"] = &entity.Customer{ID: "ajeno", CompanyID: companyB}

	_, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: "ajeno",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1, SellingPrice: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUpdate_RestituyeYReaplicaStock(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")
	f.addBoughtProduct("p2")

	created, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 4, SellingPrice: dec("100")}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, f.products.products["p1"].Stock)

	updated, err := f.uc.Update(context.Background(), companyA, entity.RoleAdmin, created.ID, dto.UpdateOrderRequest{
		CustomerID: customerID,
		Status:     entity.StatusCompleted,
		Items:      []dto.OrderItemRequest{{ProductID: "p2", Quantity: 3, SellingPrice: dec("90")}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, f.products.products["p1"].Stock, "las líneas viejas devuelven su stock")
	assert.Equal(t, 7, f.products.products["p2"].Stock, "las líneas nuevas descuentan el suyo")
	assert.Equal(t, entity.StatusCompleted, updated.Status)
	assert.True(t, updated.TotalAmount.Equal(dec("270")), "los totales se recalculan desde cero")
}

func TestOrderUpdate_EstadoFueraDelConjunto_Rechazado(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	created, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 2, SellingPrice: dec("100")}},
	})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), companyA, entity.RoleAdmin, created.ID, dto.UpdateOrderRequest{
		CustomerID: customerID,
		Status:     "Bananas",
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1, SellingPrice: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	persisted := f.orders.orders[created.ID]
	require.NotNil(t, persisted)
	assert.Equal(t, entity.StatusPending, persisted.Status, "el estado inventado no debe persistirse")
	assert.Equal(t, 8, f.products.products["p1"].Stock, "el stock no se toca")
}

func TestOrderUpdate_SinLineasValidas_DejaLaOrdenComoEstaba(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	created, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 2, SellingPrice: dec("100")}},
	})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), companyA, entity.RoleAdmin, created.ID, dto.UpdateOrderRequest{
		CustomerID: customerID,
		Status:     entity.StatusPending,
		Items:      []dto.OrderItemRequest{{ProductID: "", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)

	// la orden original sigue intacta: líneas, totales y stock
	persisted := f.orders.orders[created.ID]
	require.NotNil(t, persisted)
	assert.True(t, persisted.TotalAmount.Equal(dec("200")))
	assert.Len(t, f.orders.items[created.ID], 1)
	assert.Equal(t, 8, f.products.products["p1"].Stock)
}

func TestOrderDelete_RestituyeStock(t *testing.T) {
	f := newOrderFixture()
	f.addBoughtProduct("p1")

	created, err := f.uc.Create(context.Background(), companyA, sellerID, entity.RoleAdmin, dto.CreateOrderRequest{
		CustomerID: customerID,
		Items:      []dto.OrderItemRequest{{ProductID: "p1", Quantity: 4, SellingPrice: dec("100")}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, f.products.products["p1"].Stock)

	require.NoError(t, f.uc.Delete(context.Background(), companyA, created.ID))
	assert.Equal(t, 10, f.products.products["p1"].Stock, "borrar la orden devuelve el stock")
	assert.Empty(t, f.orders.orders)
}

func TestOrderDelete_OrdenDeOtraEmpresa_NotFound(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders["o-ajena"] = &entity.Order{ID: "o-ajena", CompanyID: companyB}

	err := f.uc.Delete(context.Background(), companyA, "o-ajena")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListPending
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderListPending_StaffSoloVeLasPropias(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders["o1"] = &entity.Order{ID: "o1", CompanyID: companyA, CreatedBy: sellerID, Status: entity.StatusPending}
	f.orders.orders["o2"] = &entity.Order{ID: "o2", CompanyID: companyA, CreatedBy: "otro", Status: entity.StatusPending}
	f.orders.orders["o3"] = &entity.Order{ID: "o3", CompanyID: companyA, CreatedBy: sellerID, Status: entity.StatusCompleted}

	own, err := f.uc.ListPending(context.Background(), companyA, entity.RoleStaff, sellerID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "o1", own[0].ID)

	all, err := f.uc.ListPending(context.Background(), companyA, entity.RoleManager, sellerID)
	require.NoError(t, err)
	assert.Len(t, all, 2, "Manager ve todas las pendientes de la empresa")
}
