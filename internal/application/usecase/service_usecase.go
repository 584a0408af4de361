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

// ServiceUseCase casos de uso de tickets de servicio postventa.
type ServiceUseCase struct {
	serviceRepo  repository.ServiceRepository
	customerRepo repository.CustomerRepository
	leadRepo     repository.LeadRepository
}

// NewServiceUseCase construye el caso de uso con los puertos de persistencia.
func NewServiceUseCase(
	serviceRepo repository.ServiceRepository,
	customerRepo repository.CustomerRepository,
	leadRepo repository.LeadRepository,
) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo, customerRepo: customerRepo, leadRepo: leadRepo}
}

// Create crea un ticket asociado a un cliente o a un lead abierto (exactamente
// uno de los dos). ErrInvalidInput si vienen ambos, ninguno, o el lead ya cerró.
func (uc *ServiceUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if err := uc.validateTarget(ctx, companyID, in.CustomerID, in.LeadID); err != nil {
		return nil, err
	}
	s := &entity.Service{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		CustomerID:       in.CustomerID,
		LeadID:           in.LeadID,
		ProductID:        in.ProductID,
		ServiceType:      in.ServiceType,
		Description:      in.Description,
		IssueDescription: in.IssueDescription,
		AssignedTo:       in.AssignedTo,
		ServiceDate:      in.ServiceDate,
		Status:           entity.StatusPending,
		CreatedBy:        userID,
		CreatedAt:        time.Now(),
	}
	if err := uc.serviceRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := toServiceResponse(s)
	return &resp, nil
}

// GetByID obtiene un ticket. Devuelve ErrNotFound si no existe en la empresa.
func (uc *ServiceUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ServiceResponse, error) {
	s, err := uc.serviceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toServiceResponse(s)
	return &resp, nil
}

// Update actualiza un ticket de servicio. El estado debe pertenecer al
// conjunto cerrado Pending/Completed.
func (uc *ServiceUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if !entity.ValidOrderStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.serviceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validateTarget(ctx, companyID, in.CustomerID, in.LeadID); err != nil {
		return nil, err
	}
	s.CustomerID = in.CustomerID
	s.LeadID = in.LeadID
	s.ProductID = in.ProductID
	s.ServiceType = in.ServiceType
	s.Description = in.Description
	s.IssueDescription = in.IssueDescription
	s.AssignedTo = in.AssignedTo
	s.ServiceDate = in.ServiceDate
	s.Status = in.Status
	if err := uc.serviceRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	resp := toServiceResponse(s)
	return &resp, nil
}

// Delete elimina un ticket de la empresa.
func (uc *ServiceUseCase) Delete(ctx context.Context, companyID, id string) error {
	s, err := uc.serviceRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Delete(ctx, companyID, id)
}

// List lista tickets de la empresa.
func (uc *ServiceUseCase) List(ctx context.Context, companyID string) ([]dto.ServiceResponse, error) {
	services, err := uc.serviceRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}

// ListCompleted lista tickets completados. Staff solo ve los que creó.
func (uc *ServiceUseCase) ListCompleted(ctx context.Context, companyID, role, userID string) ([]dto.ServiceResponse, error) {
	createdBy := ""
	if role == entity.RoleStaff {
		createdBy = userID
	}
	services, err := uc.serviceRepo.ListCompleted(ctx, companyID, createdBy)
	if err != nil {
		return nil, err
	}
	return toServiceResponses(services), nil
}

// validateTarget exige exactamente un destino (cliente o lead) de la empresa.
// El lead además debe seguir abierto.
func (uc *ServiceUseCase) validateTarget(ctx context.Context, companyID, customerID, leadID string) error {
	if (customerID == "") == (leadID == "") {
		return domain.ErrInvalidInput
	}
	if customerID != "" {
		c, err := uc.customerRepo.GetByID(ctx, companyID, customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		return nil
	}
	l, err := uc.leadRepo.GetByID(ctx, companyID, leadID)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if !l.Open() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:               s.ID,
		CustomerID:       s.CustomerID,
		LeadID:           s.LeadID,
		ProductID:        s.ProductID,
		ServiceType:      s.ServiceType,
		Description:      s.Description,
		IssueDescription: s.IssueDescription,
		AssignedTo:       s.AssignedTo,
		ServiceDate:      s.ServiceDate,
		Status:           s.Status,
		CreatedBy:        s.CreatedBy,
		CreatedAt:        s.CreatedAt,
	}
}

func toServiceResponses(services []*entity.Service) []dto.ServiceResponse {
	out := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return out
}
