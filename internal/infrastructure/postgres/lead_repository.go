package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador de persistencia para leads.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persiste un lead. assigned_to vacío se guarda como NULL.
func (r *LeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (id, company_id, name, email, phone, address, status, assigned_to, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CompanyID, l.Name, l.Email, l.Phone, l.Address, l.Status, l.AssignedTo, l.CreatedBy, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID dentro de la empresa. Nil si no existe o pertenece a otra empresa.
func (r *LeadRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Lead, error) {
	query := `
		SELECT id, company_id, name, email, phone, address, status, COALESCE(assigned_to, ''), created_by, created_at
		FROM leads WHERE id = $1 AND company_id = $2`
	var l entity.Lead
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Email, &l.Phone, &l.Address, &l.Status, &l.AssignedTo, &l.CreatedBy, &l.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// Update actualiza los datos y el estado de un lead.
func (r *LeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads SET name = $3, email = $4, phone = $5, address = $6, status = $7, assigned_to = NULLIF($8, '')
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, l.ID, l.CompanyID, l.Name, l.Email, l.Phone, l.Address, l.Status, l.AssignedTo)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead de la empresa.
func (r *LeadRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// ListByCompany lista leads de la empresa, más recientes primero.
func (r *LeadRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Lead, error) {
	query := `
		SELECT id, company_id, name, email, phone, address, status, COALESCE(assigned_to, ''), created_by, created_at
		FROM leads WHERE company_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

// ListOpenByCompany lista los leads todavía abiertos (Nuevo o Contactado).
func (r *LeadRepo) ListOpenByCompany(ctx context.Context, companyID string) ([]*entity.Lead, error) {
	query := `
		SELECT id, company_id, name, email, phone, address, status, COALESCE(assigned_to, ''), created_by, created_at
		FROM leads WHERE company_id = $1 AND status IN ($2, $3)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, entity.LeadNew, entity.LeadContacted)
	if err != nil {
		return nil, fmt.Errorf("list open leads: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

func scanLeads(rows pgx.Rows) ([]*entity.Lead, error) {
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Name, &l.Email, &l.Phone, &l.Address, &l.Status, &l.AssignedTo, &l.CreatedBy, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
