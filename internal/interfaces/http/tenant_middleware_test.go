package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
	apphttp "github.com/jhoicas/crm-pyme/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/crm-pyme/pkg/jwt"
)

// stubMembershipRepo devuelve una membresía fija para GetByUserAndCompany;
// el resto del puerto no lo usa el middleware.
type stubMembershipRepo struct {
	membership *entity.Membership
}

func (r *stubMembershipRepo) Create(_ context.Context, _ *entity.Membership) error { return nil }
func (r *stubMembershipRepo) GetByID(_ context.Context, _, _ string) (*entity.Membership, error) {
	return nil, nil
}
func (r *stubMembershipRepo) GetByUserAndCompany(_ context.Context, _, _ string) (*entity.Membership, error) {
	return r.membership, nil
}
func (r *stubMembershipRepo) ListApprovedByUser(_ context.Context, _ string) ([]*entity.Membership, error) {
	return nil, nil
}
func (r *stubMembershipRepo) ListByCompany(_ context.Context, _, _ string) ([]repository.MembershipRow, error) {
	return nil, nil
}
func (r *stubMembershipRepo) Update(_ context.Context, _ *entity.Membership) error { return nil }
func (r *stubMembershipRepo) Delete(_ context.Context, _, _ string) error          { return nil }

func buildTenantApp(repo repository.MembershipRepository) *fiber.App {
	app := fiber.New()
	app.Get("/tenant",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.TenantMiddleware(repo),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func doTenantRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El rol efectivo sale de la membresía en DB, no del claim del token: un token
// viejo con rol Staff opera como Manager si la membresía ya fue ascendida.
func TestTenantMiddleware_RolDeDBPesaMasQueElToken(t *testing.T) {
	repo := &stubMembershipRepo{membership: &entity.Membership{
		UserID: testUserID, CompanyID: testCompanyID,
		Role: entity.RoleManager, Status: entity.MembershipApproved,
	}}
	app := buildTenantApp(repo)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, entity.RoleStaff, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doTenantRequest(t, app, tok)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.RoleManager, body["role"])
}

func TestTenantMiddleware_SinEmpresaEnElToken_Retorna403(t *testing.T) {
	app := buildTenantApp(&stubMembershipRepo{})

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doTenantRequest(t, app, tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_COMPANY")
}

func TestTenantMiddleware_MembresiaPendiente_Retorna403(t *testing.T) {
	repo := &stubMembershipRepo{membership: &entity.Membership{
		UserID: testUserID, CompanyID: testCompanyID,
		Role: entity.RoleStaff, Status: entity.MembershipPending,
	}}
	app := buildTenantApp(repo)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, entity.RoleStaff, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doTenantRequest(t, app, tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_COMPANY_ACCESS")
}

func TestTenantMiddleware_SinMembresia_Retorna403(t *testing.T) {
	app := buildTenantApp(&stubMembershipRepo{membership: nil})

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, entity.RoleAdmin, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doTenantRequest(t, app, tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
