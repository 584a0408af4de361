package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/application/usecase"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
)

func newLeaveFixture() (*usecase.LeaveUseCase, *memLeaveRepo) {
	repo := newMemLeaveRepo()
	return usecase.NewLeaveUseCase(repo), repo
}

func TestLeaveApply_CreaPendiente(t *testing.T) {
	uc, repo := newLeaveFixture()

	resp, err := uc.Apply(context.Background(), testCompany, "u1", dto.ApplyLeaveRequest{
		LeaveType: "Vacaciones",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Reason:    "viaje familiar",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeavePending, resp.Status)
	assert.Equal(t, "2026-09-01", resp.StartDate)
	assert.Equal(t, "2026-09-05", resp.EndDate)
	assert.Len(t, repo.leaves, 1)
}

func TestLeaveApply_FechaIlegible(t *testing.T) {
	uc, _ := newLeaveFixture()

	_, err := uc.Apply(context.Background(), testCompany, "u1", dto.ApplyLeaveRequest{
		LeaveType: "Vacaciones",
		StartDate: "01/09/2026",
		EndDate:   "2026-09-05",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeaveApply_RangoInvertido(t *testing.T) {
	uc, _ := newLeaveFixture()

	_, err := uc.Apply(context.Background(), testCompany, "u1", dto.ApplyLeaveRequest{
		LeaveType: "Vacaciones",
		StartDate: "2026-09-05",
		EndDate:   "2026-09-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "end_date no puede ser anterior a start_date")
}

func TestLeaveApply_UnSoloDiaEsValido(t *testing.T) {
	uc, _ := newLeaveFixture()

	resp, err := uc.Apply(context.Background(), testCompany, "u1", dto.ApplyLeaveRequest{
		LeaveType: "Cita médica",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.StartDate, resp.EndDate)
}

func TestLeaveList_StaffSoloVeLasPropias(t *testing.T) {
	uc, repo := newLeaveFixture()
	repo.leaves["lv1"] = &entity.Leave{ID: "lv1", CompanyID: testCompany, UserID: "u1", Status: entity.LeavePending}
	repo.leaves["lv2"] = &entity.Leave{ID: "lv2", CompanyID: testCompany, UserID: "u2", Status: entity.LeavePending}

	own, err := uc.List(context.Background(), testCompany, entity.RoleStaff, "u1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "lv1", own[0].ID)

	all, err := uc.List(context.Background(), testCompany, entity.RoleManager, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2, "Manager ve las solicitudes de toda la empresa")
}

func TestLeaveApprove_CambiaEstado(t *testing.T) {
	uc, repo := newLeaveFixture()
	repo.leaves["lv1"] = &entity.Leave{ID: "lv1", CompanyID: testCompany, UserID: "u1", Status: entity.LeavePending}

	require.NoError(t, uc.Approve(context.Background(), testCompany, "lv1"))
	assert.Equal(t, entity.LeaveApproved, repo.leaves["lv1"].Status)
}

func TestLeaveReject_CambiaEstado(t *testing.T) {
	uc, repo := newLeaveFixture()
	repo.leaves["lv1"] = &entity.Leave{ID: "lv1", CompanyID: testCompany, UserID: "u1", Status: entity.LeavePending}

	require.NoError(t, uc.Reject(context.Background(), testCompany, "lv1"))
	assert.Equal(t, entity.LeaveRejected, repo.leaves["lv1"].Status)
}

func TestLeaveApprove_YaResuelta(t *testing.T) {
	uc, repo := newLeaveFixture()
	repo.leaves["lv1"] = &entity.Leave{ID: "lv1", CompanyID: testCompany, UserID: "u1", Status: entity.LeaveRejected}

	err := uc.Approve(context.Background(), testCompany, "lv1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "una solicitud resuelta no se reabre")
}

func TestLeaveApprove_OtraEmpresa_NotFound(t *testing.T) {
	uc, repo := newLeaveFixture()
	repo.leaves["lv1"] = &entity.Leave{ID: "lv1", CompanyID: "otra-empresa", UserID: "u1", Status: entity.LeavePending}

	err := uc.Approve(context.Background(), testCompany, "lv1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
