package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

// LeaveRepo implementación del puerto LeaveRepository sobre PostgreSQL (usable con pool o tx).
type LeaveRepo struct {
	q Querier
}

// NewLeaveRepository construye el adaptador de persistencia para solicitudes de permiso.
func NewLeaveRepository(q Querier) *LeaveRepo {
	return &LeaveRepo{q: q}
}

// Create persiste una solicitud de permiso.
func (r *LeaveRepo) Create(ctx context.Context, l *entity.Leave) error {
	query := `
		INSERT INTO leaves (id, company_id, user_id, leave_type, start_date, end_date, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CompanyID, l.UserID, l.LeaveType, l.StartDate, l.EndDate, l.Reason, l.Status, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID dentro de la empresa.
func (r *LeaveRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Leave, error) {
	query := `
		SELECT id, company_id, user_id, leave_type, start_date, end_date, COALESCE(reason, ''), status, created_at
		FROM leaves WHERE id = $1 AND company_id = $2`
	var l entity.Leave
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&l.ID, &l.CompanyID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave: %w", err)
	}
	return &l, nil
}

// UpdateStatus cambia el estado de una solicitud (aprobar o rechazar).
func (r *LeaveRepo) UpdateStatus(ctx context.Context, companyID, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE leaves SET status = $3 WHERE id = $1 AND company_id = $2`,
		id, companyID, status,
	)
	if err != nil {
		return fmt.Errorf("update leave status: %w", err)
	}
	return nil
}

// ListByCompany lista todas las solicitudes de la empresa, más recientes primero.
func (r *LeaveRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Leave, error) {
	query := `
		SELECT id, company_id, user_id, leave_type, start_date, end_date, COALESCE(reason, ''), status, created_at
		FROM leaves WHERE company_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()
	return scanLeaves(rows)
}

// ListByUser lista las solicitudes de un usuario dentro de la empresa.
func (r *LeaveRepo) ListByUser(ctx context.Context, companyID, userID string) ([]*entity.Leave, error) {
	query := `
		SELECT id, company_id, user_id, leave_type, start_date, end_date, COALESCE(reason, ''), status, created_at
		FROM leaves WHERE company_id = $1 AND user_id = $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("list leaves by user: %w", err)
	}
	defer rows.Close()
	return scanLeaves(rows)
}

func scanLeaves(rows pgx.Rows) ([]*entity.Leave, error) {
	var list []*entity.Leave
	for rows.Next() {
		var l entity.Leave
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.UserID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Reason, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
