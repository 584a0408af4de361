package crm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-pyme/internal/application/crm"
	"github.com/jhoicas/crm-pyme/internal/application/dto"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

const (
	companyID = "company-1"
	actorID   = "user-1"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[string]*entity.Lead{}}
}

func (r *fakeLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) GetByID(_ context.Context, companyID, id string) (*entity.Lead, error) {
	l, ok := r.leads[id]
	if !ok || l.CompanyID != companyID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) Update(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.leads, id)
	return nil
}

func (r *fakeLeadRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.CompanyID == companyID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) ListOpenByCompany(_ context.Context, companyID string) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.CompanyID == companyID && l.Open() {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, companyID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, companyID, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, _, _ string) ([]*entity.Customer, error) {
	return nil, nil
}

// fakeCRMTx pasa los fakes directamente; la conversión no necesita rollback en
// estos escenarios porque cada aserción parte de un estado limpio.
type fakeCRMTx struct {
	leadRepo     *fakeLeadRepo
	customerRepo *fakeCustomerRepo
}

func (tx *fakeCRMTx) RunCRM(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(tx.leadRepo, tx.customerRepo)
}

type leadFixture struct {
	uc        *crm.LeadUseCase
	leads     *fakeLeadRepo
	customers *fakeCustomerRepo
}

func newLeadFixture() *leadFixture {
	leads := newFakeLeadRepo()
	customers := newFakeCustomerRepo()
	tx := &fakeCRMTx{leadRepo: leads, customerRepo: customers}
	return &leadFixture{uc: crm.NewLeadUseCase(leads, tx), leads: leads, customers: customers}
}

func (f *leadFixture) addLead(id, email, status string) {
	f.leads.leads[id] = &entity.Lead{
		ID:        id,
		CompanyID: companyID,
		Name:      "Lead " + id,
		Email:     email,
		Phone:     "3001234567",
		Address:   "Calle 10 #5-20",
		Status:    status,
		CreatedBy: actorID,
	}
}

func updateReq(lead *entity.Lead, status string) dto.UpdateLeadRequest {
	return dto.UpdateLeadRequest{
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Address: lead.Address,
		Status:  status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión a cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadUpdate_ConvertedCreaCliente(t *testing.T) {
	f := newLeadFixture()
	f.addLead("l1", "lead@example.com", entity.LeadContacted)

	resp, err := f.uc.Update(context.Background(), companyID, actorID, "l1", updateReq(f.leads.leads["l1"], entity.LeadConverted))
	require.NoError(t, err)
	assert.Equal(t, entity.LeadConverted, resp.Status)

	require.Len(t, f.customers.customers, 1, "la conversión debe crear exactamente un cliente")
	for _, c := range f.customers.customers {
		assert.Equal(t, "Lead l1", c.Name)
		assert.Equal(t, "lead@example.com", c.Email)
		assert.Equal(t, "3001234567", c.Phone)
		assert.Equal(t, "Calle 10 #5-20", c.Address)
		assert.Equal(t, companyID, c.CompanyID)
		assert.Equal(t, actorID, c.CreatedBy)
	}
}

func TestLeadUpdate_ConvertedConEmailExistente_NoDuplicaCliente(t *testing.T) {
	f := newLeadFixture()
	f.addLead("l1", "repetido@example.com", entity.LeadNew)
	f.customers.customers["c1"] = &entity.Customer{
		ID: "c1", CompanyID: companyID, Name: "Cliente Previo", Email: "repetido@example.com",
	}

	_, err := f.uc.Update(context.Background(), companyID, actorID, "l1", updateReq(f.leads.leads["l1"], entity.LeadConverted))
	require.NoError(t, err)

	assert.Len(t, f.customers.customers, 1, "no debe crearse un segundo cliente con el mismo email")
	assert.Equal(t, "Cliente Previo", f.customers.customers["c1"].Name, "el cliente existente no se modifica")
}

func TestLeadUpdate_ReconvertirEsInocuo(t *testing.T) {
	f := newLeadFixture()
	f.addLead("l1", "lead@example.com", entity.LeadNew)

	_, err := f.uc.Update(context.Background(), companyID, actorID, "l1", updateReq(f.leads.leads["l1"], entity.LeadConverted))
	require.NoError(t, err)
	require.Len(t, f.customers.customers, 1)

	// segunda conversión del mismo lead: no se re-ejecuta el alta
	_, err = f.uc.Update(context.Background(), companyID, actorID, "l1", updateReq(f.leads.leads["l1"], entity.LeadConverted))
	require.NoError(t, err)
	assert.Len(t, f.customers.customers, 1)
}

func TestLeadUpdate_ConvertedSinEmail_CreaClienteIgual(t *testing.T) {
	f := newLeadFixture()
	f.addLead("l1", "", entity.LeadContacted)

	_, err := f.uc.Update(context.Background(), companyID, actorID, "l1", updateReq(f.leads.leads["l1"], entity.LeadConverted))
	require.NoError(t, err)
	assert.Len(t, f.customers.customers, 1, "sin email no hay deduplicación pero sí alta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones y tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestLeadUpdate_EstadoInvalido(t *testing.T) {
	f := newLeadFixture()
	f.addLead("l1", "", entity.LeadNew)

	_, err := f.uc.Update(context.Background(), companyID, actorID, "l1", updateReq(f.leads.leads["l1"], "Ganado"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeadUpdate_LeadDeOtraEmpresa_NotFound(t *testing.T) {
	f := newLeadFixture()
	f.leads.leads["ajeno"] = &entity.Lead{ID: "ajeno", CompanyID: "otra-empresa", Status: entity.LeadNew}

	_, err := f.uc.Update(context.Background(), companyID, actorID, "ajeno", dto.UpdateLeadRequest{Name: "x", Status: entity.LeadContacted})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLeadCreate_EstadoInicialNew(t *testing.T) {
	f := newLeadFixture()

	resp, err := f.uc.Create(context.Background(), companyID, actorID, dto.CreateLeadRequest{Name: "Nuevo Lead"})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadNew, resp.Status)
	assert.Equal(t, actorID, resp.CreatedBy)
}

func TestLeadList_OpenOnlyFiltraCerrados(t *testing.T) {
	f := newLeadFixture()
	f.addLead("l1", "", entity.LeadNew)
	f.addLead("l2", "", entity.LeadContacted)
	f.addLead("l3", "", entity.LeadConverted)
	f.addLead("l4", "", entity.LeadNotConverted)

	open, err := f.uc.List(context.Background(), companyID, true)
	require.NoError(t, err)
	assert.Len(t, open, 2, "solo New y Contacted son abiertos")

	all, err := f.uc.List(context.Background(), companyID, false)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
