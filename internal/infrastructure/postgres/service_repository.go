package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de persistencia para tickets de servicio.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

const serviceColumns = `
	id, company_id, COALESCE(customer_id, ''), COALESCE(lead_id, ''), COALESCE(product_id, ''),
	service_type, COALESCE(description, ''), COALESCE(issue_description, ''),
	COALESCE(assigned_to, ''), service_date, status, created_by, created_at`

// Create persiste un ticket de servicio. Referencias vacías se guardan como NULL.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (
			id, company_id, customer_id, lead_id, product_id,
			service_type, description, issue_description,
			assigned_to, service_date, status, created_by, created_at
		) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''),
			$6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.CustomerID, s.LeadID, s.ProductID,
		s.ServiceType, s.Description, s.IssueDescription,
		s.AssignedTo, s.ServiceDate, s.Status, s.CreatedBy, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID dentro de la empresa.
func (r *ServiceRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 AND company_id = $2`
	var s entity.Service
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&s.ID, &s.CompanyID, &s.CustomerID, &s.LeadID, &s.ProductID,
		&s.ServiceType, &s.Description, &s.IssueDescription,
		&s.AssignedTo, &s.ServiceDate, &s.Status, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// Update actualiza un ticket de servicio.
func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services SET
			customer_id = NULLIF($3, ''), lead_id = NULLIF($4, ''), product_id = NULLIF($5, ''),
			service_type = $6, description = NULLIF($7, ''), issue_description = NULLIF($8, ''),
			assigned_to = NULLIF($9, ''), service_date = $10, status = $11
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.CustomerID, s.LeadID, s.ProductID,
		s.ServiceType, s.Description, s.IssueDescription,
		s.AssignedTo, s.ServiceDate, s.Status,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete elimina un ticket de la empresa.
func (r *ServiceRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM services WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

// ListByCompany lista tickets de la empresa, más recientes primero.
func (r *ServiceRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	return scanServices(rows)
}

// ListCompleted lista tickets completados. Con createdBy no vacío filtra
// solo los creados por ese usuario (vista de Staff).
func (r *ServiceRepo) ListCompleted(ctx context.Context, companyID, createdBy string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + `
		FROM services
		WHERE company_id = $1 AND status = 'Completed' AND ($2 = '' OR created_by = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, createdBy)
	if err != nil {
		return nil, fmt.Errorf("list completed services: %w", err)
	}
	defer rows.Close()
	return scanServices(rows)
}

func scanServices(rows pgx.Rows) ([]*entity.Service, error) {
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &s.CustomerID, &s.LeadID, &s.ProductID,
			&s.ServiceType, &s.Description, &s.IssueDescription,
			&s.AssignedTo, &s.ServiceDate, &s.Status, &s.CreatedBy, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
