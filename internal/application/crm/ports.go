package crm

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción con los repos de
// leads y clientes atados a ella. La conversión de un lead (cambio de estado
// más alta del cliente) es una sola unidad.
type TxRunner interface {
	RunCRM(ctx context.Context, fn func(
		leadRepo repository.LeadRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
