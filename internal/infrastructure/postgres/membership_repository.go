package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del puerto MembershipRepository sobre PostgreSQL (usable con pool o tx).
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador de persistencia para membresías. Pasar pool o tx (Querier).
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create persiste una membresía. Devuelve domain.ErrDuplicate si ya existe el par (user, company).
func (r *MembershipRepo) Create(ctx context.Context, m *entity.Membership) error {
	query := `
		INSERT INTO memberships (id, user_id, company_id, role, status, salary, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.UserID, m.CompanyID, m.Role, m.Status, m.Salary, m.JoinedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByID obtiene una membresía por ID dentro de la empresa. Nil si no existe o es de otra empresa.
func (r *MembershipRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Membership, error) {
	query := `
		SELECT id, user_id, company_id, role, status, salary, joined_at
		FROM memberships WHERE id = $1 AND company_id = $2`
	var m entity.Membership
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(
		&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.Status, &m.Salary, &m.JoinedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &m, nil
}

// GetByUserAndCompany obtiene la membresía del usuario en la empresa (cualquier estado).
func (r *MembershipRepo) GetByUserAndCompany(ctx context.Context, userID, companyID string) (*entity.Membership, error) {
	query := `
		SELECT id, user_id, company_id, role, status, salary, joined_at
		FROM memberships WHERE user_id = $1 AND company_id = $2`
	var m entity.Membership
	err := r.q.QueryRow(ctx, query, userID, companyID).Scan(
		&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.Status, &m.Salary, &m.JoinedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership by user/company: %w", err)
	}
	return &m, nil
}

// ListApprovedByUser lista las membresías aprobadas del usuario (selección de empresa).
func (r *MembershipRepo) ListApprovedByUser(ctx context.Context, userID string) ([]*entity.Membership, error) {
	query := `
		SELECT id, user_id, company_id, role, status, salary, joined_at
		FROM memberships WHERE user_id = $1 AND status = $2 ORDER BY joined_at`
	rows, err := r.q.Query(ctx, query, userID, entity.MembershipApproved)
	if err != nil {
		return nil, fmt.Errorf("list memberships by user: %w", err)
	}
	defer rows.Close()
	var list []*entity.Membership
	for rows.Next() {
		var m entity.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.Status, &m.Salary, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByCompany lista membresías de la empresa con nombre y email del usuario. status vacío = todas.
func (r *MembershipRepo) ListByCompany(ctx context.Context, companyID, status string) ([]repository.MembershipRow, error) {
	query := `
		SELECT m.id, m.user_id, m.company_id, m.role, m.status, m.salary, m.joined_at, u.name, u.email
		FROM memberships m JOIN users u ON u.id = m.user_id
		WHERE m.company_id = $1 AND ($2 = '' OR m.status = $2)
		ORDER BY m.joined_at DESC`
	rows, err := r.q.Query(ctx, query, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()
	var list []repository.MembershipRow
	for rows.Next() {
		var row repository.MembershipRow
		m := &row.Membership
		if err := rows.Scan(&m.ID, &m.UserID, &m.CompanyID, &m.Role, &m.Status, &m.Salary, &m.JoinedAt,
			&row.UserName, &row.UserEmail); err != nil {
			return nil, fmt.Errorf("scan membership row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza rol, estado y salario de una membresía.
func (r *MembershipRepo) Update(ctx context.Context, m *entity.Membership) error {
	query := `
		UPDATE memberships SET role = $3, status = $4, salary = $5
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, m.ID, m.CompanyID, m.Role, m.Status, m.Salary)
	if err != nil {
		return fmt.Errorf("update membership: %w", err)
	}
	return nil
}

// Delete elimina una membresía de la empresa (rechazo o retiro).
func (r *MembershipRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM memberships WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	return nil
}
