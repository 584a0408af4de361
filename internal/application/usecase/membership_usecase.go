package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// MembershipUseCase gestión del personal de la empresa: aprobar o rechazar
// solicitudes, cambiar rol y salario, retirar miembros.
type MembershipUseCase struct {
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
}

// NewMembershipUseCase construye el caso de uso con los puertos de persistencia.
func NewMembershipUseCase(membershipRepo repository.MembershipRepository, userRepo repository.UserRepository) *MembershipUseCase {
	return &MembershipUseCase{membershipRepo: membershipRepo, userRepo: userRepo}
}

// ListPending lista las solicitudes de ingreso pendientes de la empresa.
func (uc *MembershipUseCase) ListPending(ctx context.Context, companyID string) ([]dto.MembershipResponse, error) {
	rows, err := uc.membershipRepo.ListByCompany(ctx, companyID, entity.MembershipPending)
	if err != nil {
		return nil, err
	}
	return toMembershipResponses(rows), nil
}

// ListMembers lista los miembros aprobados de la empresa.
func (uc *MembershipUseCase) ListMembers(ctx context.Context, companyID string) ([]dto.MembershipResponse, error) {
	rows, err := uc.membershipRepo.ListByCompany(ctx, companyID, entity.MembershipApproved)
	if err != nil {
		return nil, err
	}
	return toMembershipResponses(rows), nil
}

// Approve aprueba una solicitud pendiente asignándole rol y salario.
// Devuelve ErrNotFound si la membresía no existe en la empresa y
// ErrInvalidInput si el rol no es válido o la solicitud no está pendiente.
func (uc *MembershipUseCase) Approve(ctx context.Context, companyID, membershipID string, in dto.ApproveMembershipRequest) (*dto.MembershipResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.membershipRepo.GetByID(ctx, companyID, membershipID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Status != entity.MembershipPending {
		return nil, domain.ErrInvalidInput
	}
	m.Role = in.Role
	m.Salary = in.Salary
	m.Status = entity.MembershipApproved
	if err := uc.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := toMembershipResponse(m)
	return &resp, nil
}

// Reject rechaza una solicitud pendiente eliminándola.
func (uc *MembershipUseCase) Reject(ctx context.Context, companyID, membershipID string) error {
	m, err := uc.membershipRepo.GetByID(ctx, companyID, membershipID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if m.Status != entity.MembershipPending {
		return domain.ErrInvalidInput
	}
	return uc.membershipRepo.Delete(ctx, companyID, membershipID)
}

// UpdateMember cambia rol y salario de un miembro aprobado.
func (uc *MembershipUseCase) UpdateMember(ctx context.Context, companyID, membershipID string, in dto.UpdateMemberRequest) (*dto.MembershipResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.membershipRepo.GetByID(ctx, companyID, membershipID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	m.Role = in.Role
	m.Salary = in.Salary
	if err := uc.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := toMembershipResponse(m)
	return &resp, nil
}

// RemoveMember retira a un miembro de la empresa.
func (uc *MembershipUseCase) RemoveMember(ctx context.Context, companyID, membershipID string) error {
	m, err := uc.membershipRepo.GetByID(ctx, companyID, membershipID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.membershipRepo.Delete(ctx, companyID, membershipID)
}

// AddMember incorpora personal directamente como miembro aprobado. Si el
// email ya está registrado reutiliza la cuenta; si no, la crea con el nombre
// y password recibidos (ErrInvalidInput si faltan). Devuelve ErrDuplicate si
// el usuario ya tiene membresía en la empresa.
func (uc *MembershipUseCase) AddMember(ctx context.Context, companyID string, in dto.AddMemberRequest) (*dto.MembershipResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if in.Name == "" || in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		user = &entity.User{
			ID:           uuid.New().String(),
			Email:        in.Email,
			PasswordHash: string(hash),
			Name:         in.Name,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}
	existing, err := uc.membershipRepo.GetByUserAndCompany(ctx, user.ID, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	m := &entity.Membership{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CompanyID: companyID,
		Role:      in.Role,
		Status:    entity.MembershipApproved,
		Salary:    in.Salary,
		JoinedAt:  time.Now(),
	}
	if err := uc.membershipRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	resp := toMembershipResponse(m)
	resp.UserName = user.Name
	resp.UserEmail = user.Email
	return &resp, nil
}

func toMembershipResponse(m *entity.Membership) dto.MembershipResponse {
	return dto.MembershipResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Role:     m.Role,
		Status:   m.Status,
		Salary:   m.Salary,
		JoinedAt: m.JoinedAt,
	}
}

func toMembershipResponses(rows []repository.MembershipRow) []dto.MembershipResponse {
	out := make([]dto.MembershipResponse, 0, len(rows))
	for _, row := range rows {
		resp := toMembershipResponse(&row.Membership)
		resp.UserName = row.UserName
		resp.UserEmail = row.UserEmail
		out = append(out, resp)
	}
	return out
}
