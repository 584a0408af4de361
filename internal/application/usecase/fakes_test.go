package usecase_test

import (
	"context"

	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

// Fakes en memoria compartidos por los tests del paquete. Cada fake respeta el
// contrato del puerto: nil cuando el recurso no existe o pertenece a otra
// empresa, copias defensivas al leer y escribir.

const testCompany = "company-test"

type memMembershipRepo struct {
	memberships map[string]*entity.Membership
	users       map[string]*entity.User // compartido con memUserRepo para resolver nombre/email
}

// newMemMembershipRepo recibe el mapa de usuarios del memUserRepo del mismo
// fixture, igual que el adaptador real resuelve el JOIN contra users.
func newMemMembershipRepo(users map[string]*entity.User) *memMembershipRepo {
	return &memMembershipRepo{
		memberships: map[string]*entity.Membership{},
		users:       users,
	}
}

func (r *memMembershipRepo) Create(_ context.Context, m *entity.Membership) error {
	for _, existing := range r.memberships {
		if existing.UserID == m.UserID && existing.CompanyID == m.CompanyID {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.memberships[m.ID] = &cp
	return nil
}

func (r *memMembershipRepo) GetByID(_ context.Context, companyID, id string) (*entity.Membership, error) {
	m, ok := r.memberships[id]
	if !ok || m.CompanyID != companyID {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMembershipRepo) GetByUserAndCompany(_ context.Context, userID, companyID string) (*entity.Membership, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.CompanyID == companyID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMembershipRepo) ListApprovedByUser(_ context.Context, userID string) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, m := range r.memberships {
		if m.UserID == userID && m.Status == entity.MembershipApproved {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMembershipRepo) ListByCompany(_ context.Context, companyID, status string) ([]repository.MembershipRow, error) {
	var out []repository.MembershipRow
	for _, m := range r.memberships {
		if m.CompanyID != companyID {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		row := repository.MembershipRow{Membership: *m}
		if u, ok := r.users[m.UserID]; ok {
			row.UserName = u.Name
			row.UserEmail = u.Email
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *memMembershipRepo) Update(_ context.Context, m *entity.Membership) error {
	cp := *m
	r.memberships[m.ID] = &cp
	return nil
}

func (r *memMembershipRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.memberships, id)
	return nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListApprovedByCompany(_ context.Context, _ string) ([]*entity.User, error) {
	return nil, nil
}

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, companyID, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.categories, id)
	return nil
}

func (r *memCategoryRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Category, error) {
	return nil, nil
}

func (r *memCategoryRepo) Search(_ context.Context, _, _ string) ([]*entity.Category, error) {
	return nil, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, companyID, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Product, error) {
	return r.GetByID(ctx, companyID, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, companyID, id string, stock int) error {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *memProductRepo) AdjustStock(_ context.Context, companyID, id string, delta int) (int, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return 0, domain.ErrNotFound
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, companyID, id string) (int, error) {
	p, ok := r.products[id]
	if !ok || p.CompanyID != companyID {
		return 0, domain.ErrNotFound
	}
	if p.Stock > 0 {
		p.Stock--
	}
	return p.Stock, nil
}

func (r *memProductRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(_ context.Context, companyID, categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID && p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Search(_ context.Context, _, _ string) ([]*entity.Product, error) {
	return nil, nil
}

type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, companyID, id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) GetByEmail(_ context.Context, companyID, email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.CompanyID == companyID && c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.customers, id)
	return nil
}

func (r *memCustomerRepo) ListByCompany(_ context.Context, _ string, _, _ int) ([]*entity.Customer, error) {
	return nil, nil
}

func (r *memCustomerRepo) Search(_ context.Context, _, _ string) ([]*entity.Customer, error) {
	return nil, nil
}

type memLeadRepo struct {
	leads map[string]*entity.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{leads: map[string]*entity.Lead{}}
}

func (r *memLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *memLeadRepo) GetByID(_ context.Context, companyID, id string) (*entity.Lead, error) {
	l, ok := r.leads[id]
	if !ok || l.CompanyID != companyID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeadRepo) Update(_ context.Context, l *entity.Lead) error {
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *memLeadRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.leads, id)
	return nil
}

func (r *memLeadRepo) ListByCompany(_ context.Context, _ string) ([]*entity.Lead, error) {
	return nil, nil
}

func (r *memLeadRepo) ListOpenByCompany(_ context.Context, _ string) ([]*entity.Lead, error) {
	return nil, nil
}

type memServiceRepo struct {
	services map[string]*entity.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: map[string]*entity.Service{}}
}

func (r *memServiceRepo) Create(_ context.Context, s *entity.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) GetByID(_ context.Context, companyID, id string) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok || s.CompanyID != companyID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memServiceRepo) Update(_ context.Context, s *entity.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) Delete(_ context.Context, companyID, id string) error {
	delete(r.services, id)
	return nil
}

func (r *memServiceRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.CompanyID == companyID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memServiceRepo) ListCompleted(_ context.Context, companyID, createdBy string) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		if s.CompanyID != companyID || s.Status != entity.StatusCompleted {
			continue
		}
		if createdBy != "" && s.CreatedBy != createdBy {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type memLeaveRepo struct {
	leaves map[string]*entity.Leave
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{leaves: map[string]*entity.Leave{}}
}

func (r *memLeaveRepo) Create(_ context.Context, l *entity.Leave) error {
	cp := *l
	r.leaves[l.ID] = &cp
	return nil
}

func (r *memLeaveRepo) GetByID(_ context.Context, companyID, id string) (*entity.Leave, error) {
	l, ok := r.leaves[id]
	if !ok || l.CompanyID != companyID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeaveRepo) UpdateStatus(_ context.Context, companyID, id, status string) error {
	l, ok := r.leaves[id]
	if !ok || l.CompanyID != companyID {
		return domain.ErrNotFound
	}
	l.Status = status
	return nil
}

func (r *memLeaveRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Leave, error) {
	var out []*entity.Leave
	for _, l := range r.leaves {
		if l.CompanyID == companyID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memLeaveRepo) ListByUser(_ context.Context, companyID, userID string) ([]*entity.Leave, error) {
	var out []*entity.Leave
	for _, l := range r.leaves {
		if l.CompanyID == companyID && l.UserID == userID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}
