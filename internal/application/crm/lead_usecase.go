package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// LeadUseCase casos de uso de leads, incluida la conversión a cliente.
type LeadUseCase struct {
	leadRepo repository.LeadRepository
	txRunner TxRunner
}

// NewLeadUseCase construye el caso de uso con el puerto de persistencia.
func NewLeadUseCase(leadRepo repository.LeadRepository, txRunner TxRunner) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo, txRunner: txRunner}
}

// Create registra un lead nuevo en estado New.
func (uc *LeadUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	l := &entity.Lead{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Status:     entity.LeadNew,
		AssignedTo: in.AssignedTo,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
	if err := uc.leadRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	resp := toLeadResponse(l)
	return &resp, nil
}

// GetByID obtiene un lead. Devuelve ErrNotFound si no existe en la empresa.
func (uc *LeadUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.LeadResponse, error) {
	l, err := uc.leadRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	resp := toLeadResponse(l)
	return &resp, nil
}

// Update actualiza un lead. El paso a estado Converted crea, dentro de la
// misma transacción, el cliente correspondiente; si ya existe un cliente con
// el mismo email en la empresa no se duplica. Convertir dos veces es inocuo.
func (uc *LeadUseCase) Update(ctx context.Context, companyID, actorID, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if !entity.ValidLeadStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}

	var lead *entity.Lead
	err := uc.txRunner.RunCRM(ctx, func(leadRepo repository.LeadRepository, customerRepo repository.CustomerRepository) error {
		var err error
		lead, err = leadRepo.GetByID(ctx, companyID, id)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrNotFound
		}
		wasConverted := lead.Status == entity.LeadConverted

		lead.Name = in.Name
		lead.Email = in.Email
		lead.Phone = in.Phone
		lead.Address = in.Address
		lead.Status = in.Status
		lead.AssignedTo = in.AssignedTo
		if err := leadRepo.Update(ctx, lead); err != nil {
			return err
		}

		if in.Status == entity.LeadConverted && !wasConverted {
			return convertToCustomer(ctx, customerRepo, lead, actorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toLeadResponse(lead)
	return &resp, nil
}

// Delete elimina un lead de la empresa.
func (uc *LeadUseCase) Delete(ctx context.Context, companyID, id string) error {
	l, err := uc.leadRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.leadRepo.Delete(ctx, companyID, id)
}

// List lista leads de la empresa. Con openOnly solo devuelve los abiertos.
func (uc *LeadUseCase) List(ctx context.Context, companyID string, openOnly bool) ([]dto.LeadResponse, error) {
	var (
		leads []*entity.Lead
		err   error
	)
	if openOnly {
		leads, err = uc.leadRepo.ListOpenByCompany(ctx, companyID)
	} else {
		leads, err = uc.leadRepo.ListByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return out, nil
}

// convertToCustomer da de alta al lead como cliente copiando sus datos de
// contacto. Si el email ya tiene cliente en la empresa, no hace nada.
func convertToCustomer(ctx context.Context, customerRepo repository.CustomerRepository, lead *entity.Lead, actorID string) error {
	if lead.Email != "" {
		existing, err := customerRepo.GetByEmail(ctx, lead.CompanyID, lead.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
	}
	return customerRepo.Create(ctx, &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: lead.CompanyID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Address:   lead.Address,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	})
}

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Address:    l.Address,
		Status:     l.Status,
		AssignedTo: l.AssignedTo,
		CreatedBy:  l.CreatedBy,
		CreatedAt:  l.CreatedAt,
	}
}
