// Package analytics arma los agregados del dashboard de la empresa activa:
// contadores globales más el histograma de órdenes por mes de un año elegido.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// yearOptionsCount años ofrecidos en el selector del histograma.
const yearOptionsCount = 5

var monthLabels = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// DashboardUseCase agrega contadores e histograma para el dashboard.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	companyRepo   repository.CompanyRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso de dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, companyRepo repository.CompanyRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, companyRepo: companyRepo, now: time.Now}
}

// GetDashboard arma el tablero: nombre de la empresa, rol efectivo del
// usuario, cuatro contadores y el histograma de órdenes por mes del año
// pedido (0 = año actual). Las seis consultas corren en paralelo.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, companyID, role string, year int) (*dto.DashboardDTO, error) {
	currentYear := uc.now().Year()
	if year <= 0 {
		year = currentYear
	}

	type countResult struct {
		n   int
		err error
	}
	type histResult struct {
		months [12]int
		err    error
	}
	type companyResult struct {
		company *entity.Company
		err     error
	}

	companyCh := make(chan companyResult, 1)
	ordersCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	outOfStockCh := make(chan countResult, 1)
	histCh := make(chan histResult, 1)

	go func() {
		c, err := uc.companyRepo.GetByID(ctx, companyID)
		companyCh <- companyResult{c, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrders(ctx, companyID)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx, companyID)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountPendingOrders(ctx, companyID)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOutOfStock(ctx, companyID)
		outOfStockCh <- countResult{n, err}
	}()
	go func() {
		months, err := uc.analyticsRepo.OrdersByMonth(ctx, companyID, year)
		histCh <- histResult{months, err}
	}()

	company := <-companyCh
	orders := <-ordersCh
	customers := <-customersCh
	pending := <-pendingCh
	outOfStock := <-outOfStockCh
	hist := <-histCh

	if company.err != nil {
		return nil, fmt.Errorf("dashboard: empresa: %w", company.err)
	}
	if company.company == nil {
		return nil, domain.ErrNotFound
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: total de órdenes: %w", orders.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: total de clientes: %w", customers.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes pendientes: %w", pending.err)
	}
	if outOfStock.err != nil {
		return nil, fmt.Errorf("dashboard: productos agotados: %w", outOfStock.err)
	}
	if hist.err != nil {
		return nil, fmt.Errorf("dashboard: histograma: %w", hist.err)
	}

	return &dto.DashboardDTO{
		CompanyName:    company.company.Name,
		Role:           role,
		TotalOrders:    orders.n,
		TotalCustomers: customers.n,
		PendingOrders:  pending.n,
		OutOfStock:     outOfStock.n,
		Year:           year,
		YearOptions:    yearOptions(currentYear),
		OrdersByMonth:  hist.months,
		MonthLabels:    monthLabels,
	}, nil
}

// yearOptions devuelve los años ofrecidos en el selector, del actual hacia atrás.
func yearOptions(currentYear int) []int {
	years := make([]int, 0, yearOptionsCount)
	for i := 0; i < yearOptionsCount; i++ {
		years = append(years, currentYear-i)
	}
	return years
}
