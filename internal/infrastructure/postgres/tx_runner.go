package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pyme/internal/application/auth"
	"github.com/jhoicas/crm-pyme/internal/application/crm"
	"github.com/jhoicas/crm-pyme/internal/application/sales"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner, crm.TxRunner and auth.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ crm.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales inicia una transacción con repos de órdenes y productos atados a la tx
// y hace Commit o Rollback. Todo el flujo de una orden (cabecera, líneas, stock,
// totales) vive dentro de esta transacción: cualquier error deshace el conjunto.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAccounts inicia una transacción con repos de empresas y membresías
// (crear empresa + membresía Admin fundadora como una sola unidad).
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	membershipRepo repository.MembershipRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewMembershipRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCRM inicia una transacción con repos de leads y clientes (conversión de lead).
func (r *TxRunner) RunCRM(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLeadRepository(tx), NewCustomerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
