package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/application/usecase"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

type membershipFixture struct {
	uc          *usecase.MembershipUseCase
	memberships *memMembershipRepo
	users       *memUserRepo
}

func newMembershipFixture() *membershipFixture {
	users := newMemUserRepo()
	memberships := newMemMembershipRepo(users.users)
	return &membershipFixture{
		uc:          usecase.NewMembershipUseCase(memberships, users),
		memberships: memberships,
		users:       users,
	}
}

func (f *membershipFixture) addPending(id, userID string) {
	f.memberships.memberships[id] = &entity.Membership{
		ID:        id,
		UserID:    userID,
		CompanyID: testCompany,
		Role:      entity.RoleStaff,
		Status:    entity.MembershipPending,
	}
}

func TestMembershipApprove_AsignaRolSalarioYAprueba(t *testing.T) {
	f := newMembershipFixture()
	f.addPending("m1", "u1")

	resp, err := f.uc.Approve(context.Background(), testCompany, "m1", dto.ApproveMembershipRequest{
		Role:   entity.RoleManager,
		Salary: decimal.RequireFromString("2500000"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, resp.Role)
	assert.Equal(t, entity.MembershipApproved, resp.Status)
	assert.True(t, resp.Salary.Equal(decimal.RequireFromString("2500000")))

	persisted := f.memberships.memberships["m1"]
	assert.Equal(t, entity.MembershipApproved, persisted.Status, "el estado debe persistirse")
}

func TestMembershipApprove_RolInvalido(t *testing.T) {
	f := newMembershipFixture()
	f.addPending("m1", "u1")

	_, err := f.uc.Approve(context.Background(), testCompany, "m1", dto.ApproveMembershipRequest{Role: "SuperAdmin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMembershipApprove_YaAprobada_Rechazada(t *testing.T) {
	f := newMembershipFixture()
	f.memberships.memberships["m1"] = &entity.Membership{
		ID: "m1", UserID: "u1", CompanyID: testCompany,
		Role: entity.RoleStaff, Status: entity.MembershipApproved,
	}

	_, err := f.uc.Approve(context.Background(), testCompany, "m1", dto.ApproveMembershipRequest{Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo las solicitudes pendientes se pueden aprobar")
}

func TestMembershipApprove_OtraEmpresa_NotFound(t *testing.T) {
	f := newMembershipFixture()
	f.memberships.memberships["m1"] = &entity.Membership{
		ID: "m1", UserID: "u1", CompanyID: "otra-empresa", Status: entity.MembershipPending,
	}

	_, err := f.uc.Approve(context.Background(), testCompany, "m1", dto.ApproveMembershipRequest{Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMembershipReject_EliminaLaSolicitud(t *testing.T) {
	f := newMembershipFixture()
	f.addPending("m1", "u1")

	require.NoError(t, f.uc.Reject(context.Background(), testCompany, "m1"))
	assert.Empty(t, f.memberships.memberships, "rechazar elimina la membresía")
}

func TestMembershipReject_NoPendiente(t *testing.T) {
	f := newMembershipFixture()
	f.memberships.memberships["m1"] = &entity.Membership{
		ID: "m1", UserID: "u1", CompanyID: testCompany, Status: entity.MembershipApproved,
	}

	err := f.uc.Reject(context.Background(), testCompany, "m1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, f.memberships.memberships, 1, "un miembro aprobado no se elimina por esta vía")
}

func TestMembershipAddMember_UsuarioRegistrado(t *testing.T) {
	f := newMembershipFixture()
	f.users.users["u1"] = &entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}

	resp, err := f.uc.AddMember(context.Background(), testCompany, dto.AddMemberRequest{
		Email: "ana@example.com",
		Role:  entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipApproved, resp.Status, "el alta directa queda aprobada")
	assert.Equal(t, "Ana", resp.UserName)
	assert.Len(t, f.memberships.memberships, 1)
}

func TestMembershipAddMember_EmailNuevo_CreaLaCuenta(t *testing.T) {
	f := newMembershipFixture()

	resp, err := f.uc.AddMember(context.Background(), testCompany, dto.AddMemberRequest{
		Email:    "nueva@example.com",
		Name:     "Nueva Empleada",
		Password: "clave-segura-123",
		Role:     entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MembershipApproved, resp.Status)
	assert.Equal(t, "Nueva Empleada", resp.UserName)

	require.Len(t, f.users.users, 1, "el alta con email nuevo crea la cuenta")
	for _, u := range f.users.users {
		assert.Equal(t, "nueva@example.com", u.Email)
		assert.NotEqual(t, "clave-segura-123", u.PasswordHash, "el password se guarda hasheado")
		assert.NotEmpty(t, u.PasswordHash)
	}
}

func TestMembershipAddMember_EmailNuevoSinPassword_Invalido(t *testing.T) {
	f := newMembershipFixture()

	_, err := f.uc.AddMember(context.Background(), testCompany, dto.AddMemberRequest{
		Email: "nadie@example.com",
		Role:  entity.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "crear la cuenta requiere nombre y password")
	assert.Empty(t, f.users.users)
	assert.Empty(t, f.memberships.memberships)
}

func TestMembershipAddMember_MembresiaExistente_Duplicate(t *testing.T) {
	f := newMembershipFixture()
	f.users.users["u1"] = &entity.User{ID: "u1", Email: "ana@example.com"}
	f.addPending("m1", "u1")

	_, err := f.uc.AddMember(context.Background(), testCompany, dto.AddMemberRequest{
		Email: "ana@example.com",
		Role:  entity.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMembershipListPending_SoloPendientesDeLaEmpresa(t *testing.T) {
	f := newMembershipFixture()
	f.users.users["u1"] = &entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	f.addPending("m1", "u1")
	f.memberships.memberships["m2"] = &entity.Membership{
		ID: "m2", UserID: "u2", CompanyID: testCompany, Status: entity.MembershipApproved,
	}
	f.memberships.memberships["m3"] = &entity.Membership{
		ID: "m3", UserID: "u3", CompanyID: "otra-empresa", Status: entity.MembershipPending,
	}

	pending, err := f.uc.ListPending(context.Background(), testCompany)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "m1", pending[0].ID)
	assert.Equal(t, "Ana", pending[0].UserName, "el listado resuelve el nombre del usuario")
}
