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

const leaveDateLayout = "2006-01-02"

// LeaveUseCase casos de uso de solicitudes de permiso.
type LeaveUseCase struct {
	repo repository.LeaveRepository
}

// NewLeaveUseCase construye el caso de uso con el puerto de persistencia.
func NewLeaveUseCase(repo repository.LeaveRepository) *LeaveUseCase {
	return &LeaveUseCase{repo: repo}
}

// Apply registra una solicitud de permiso del usuario en estado Pending.
// ErrInvalidInput si las fechas no parsean o el rango está invertido.
func (uc *LeaveUseCase) Apply(ctx context.Context, companyID, userID string, in dto.ApplyLeaveRequest) (*dto.LeaveResponse, error) {
	start, err := time.Parse(leaveDateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(leaveDateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	l := &entity.Leave{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		UserID:    userID,
		LeaveType: in.LeaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    in.Reason,
		Status:    entity.LeavePending,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	resp := toLeaveResponse(l)
	return &resp, nil
}

// List lista solicitudes según el rol: Admin y Manager ven todas las de la
// empresa, Staff solo las propias.
func (uc *LeaveUseCase) List(ctx context.Context, companyID, role, userID string) ([]dto.LeaveResponse, error) {
	var (
		leaves []*entity.Leave
		err    error
	)
	if role == entity.RoleStaff {
		leaves, err = uc.repo.ListByUser(ctx, companyID, userID)
	} else {
		leaves, err = uc.repo.ListByCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, toLeaveResponse(l))
	}
	return out, nil
}

// Approve aprueba una solicitud pendiente.
func (uc *LeaveUseCase) Approve(ctx context.Context, companyID, id string) error {
	return uc.resolve(ctx, companyID, id, entity.LeaveApproved)
}

// Reject rechaza una solicitud pendiente.
func (uc *LeaveUseCase) Reject(ctx context.Context, companyID, id string) error {
	return uc.resolve(ctx, companyID, id, entity.LeaveRejected)
}

func (uc *LeaveUseCase) resolve(ctx context.Context, companyID, id, status string) error {
	l, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	if l.Status != entity.LeavePending {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStatus(ctx, companyID, id, status)
}

func toLeaveResponse(l *entity.Leave) dto.LeaveResponse {
	return dto.LeaveResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		LeaveType: l.LeaveType,
		StartDate: l.StartDate.Format(leaveDateLayout),
		EndDate:   l.EndDate.Format(leaveDateLayout),
		Reason:    l.Reason,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	}
}
