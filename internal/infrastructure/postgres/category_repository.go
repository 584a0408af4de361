package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Devuelve domain.ErrDuplicate si el nombre ya existe en la empresa.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, company_id, name, image_url, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)`
	_, err := r.q.Exec(ctx, query, c.ID, c.CompanyID, c.Name, c.ImageURL, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID dentro de la empresa.
func (r *CategoryRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Category, error) {
	query := `
		SELECT id, company_id, name, COALESCE(image_url, ''), created_at
		FROM categories WHERE id = $1 AND company_id = $2`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(&c.ID, &c.CompanyID, &c.Name, &c.ImageURL, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza nombre e imagen de una categoría.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET name = $3, image_url = NULLIF($4, '')
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query, c.ID, c.CompanyID, c.Name, c.ImageURL)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría de la empresa.
func (r *CategoryRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ListByCompany lista categorías de la empresa ordenadas por nombre.
func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Category, error) {
	query := `
		SELECT id, company_id, name, COALESCE(image_url, ''), created_at
		FROM categories WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Search busca categorías por nombre dentro de la empresa.
func (r *CategoryRepo) Search(ctx context.Context, companyID, query string) ([]*entity.Category, error) {
	sql := `
		SELECT id, company_id, name, COALESCE(image_url, ''), created_at
		FROM categories
		WHERE company_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
		LIMIT 50`
	rows, err := r.q.Query(ctx, sql, companyID, query)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

func scanCategories(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
