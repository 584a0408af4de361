package auth

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción con los repos de
// empresas y membresías atados a ella. Fundar una empresa crea la empresa y
// la membresía Admin fundadora como una sola unidad.
type TxRunner interface {
	RunAccounts(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		membershipRepo repository.MembershipRepository,
	) error) error
}
