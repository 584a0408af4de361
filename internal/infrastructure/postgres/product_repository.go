package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/crm-pyme/internal/domain"
	"github.com/jhoicas/crm-pyme/internal/domain/entity"
	"github.com/jhoicas/crm-pyme/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, company_id, category_id, name, COALESCE(sku, ''), source,
	buying_price, manufacture_price, selling_price, min_selling_price,
	stock, COALESCE(specifications, ''), COALESCE(image_url, ''), created_by, created_at`

// Create persiste un producto. Devuelve domain.ErrDuplicate si el SKU ya existe en la empresa.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (
			id, company_id, category_id, name, sku, source,
			buying_price, manufacture_price, selling_price, min_selling_price,
			stock, specifications, image_url, created_by, created_at
		) VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, NULLIF($12, ''), NULLIF($13, ''), $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.CategoryID, p.Name, p.SKU, p.Source,
		p.BuyingPrice, p.ManufacturePrice, p.SellingPrice, p.MinSellingPrice,
		p.Stock, p.Specifications, p.ImageURL, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID dentro de la empresa. Nil si no existe o pertenece a otra empresa.
func (r *ProductRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND company_id = $2`
	return r.getOne(ctx, query, id, companyID)
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT ... FOR UPDATE).
// Se usa dentro de la transacción de órdenes para serializar el descuento de stock.
func (r *ProductRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND company_id = $2 FOR UPDATE`
	return r.getOne(ctx, query, id, companyID)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.SKU, &p.Source,
		&p.BuyingPrice, &p.ManufacturePrice, &p.SellingPrice, &p.MinSellingPrice,
		&p.Stock, &p.Specifications, &p.ImageURL, &p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de un producto (sin tocar el stock).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET
			category_id = $3, name = $4, sku = NULLIF($5, ''), source = $6,
			buying_price = $7, manufacture_price = $8, selling_price = $9, min_selling_price = $10,
			specifications = NULLIF($11, ''), image_url = NULLIF($12, '')
		WHERE id = $1 AND company_id = $2`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.CategoryID, p.Name, p.SKU, p.Source,
		p.BuyingPrice, p.ManufacturePrice, p.SellingPrice, p.MinSellingPrice,
		p.Specifications, p.ImageURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock de un producto en un valor absoluto.
func (r *ProductRepo) UpdateStock(ctx context.Context, companyID, id string, stock int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $3 WHERE id = $1 AND company_id = $2`,
		id, companyID, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// AdjustStock suma delta al stock del producto y devuelve el valor resultante.
// No aplica piso: quien llama decide si permite negativos.
func (r *ProductRepo) AdjustStock(ctx context.Context, companyID, id string, delta int) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx,
		`UPDATE products SET stock = stock + $3 WHERE id = $1 AND company_id = $2 RETURNING stock`,
		id, companyID, delta,
	).Scan(&stock)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("adjust stock: %w", err)
	}
	return stock, nil
}

// DecrementStock resta una unidad con piso en cero. La condición stock > 0 va
// en la misma sentencia que el decremento: dos peticiones concurrentes sobre
// stock=1 no pueden dejarlo negativo.
func (r *ProductRepo) DecrementStock(ctx context.Context, companyID, id string) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx,
		`UPDATE products SET stock = stock - 1 WHERE id = $1 AND company_id = $2 AND stock > 0 RETURNING stock`,
		id, companyID,
	).Scan(&stock)
	if err == nil {
		return stock, nil
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	// ninguna fila afectada: el stock ya estaba en el piso o el producto no existe
	err = r.q.QueryRow(ctx,
		`SELECT stock FROM products WHERE id = $1 AND company_id = $2`,
		id, companyID,
	).Scan(&stock)
	if err != nil {
		if isNoRows(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	return stock, nil
}

// Delete elimina un producto de la empresa.
func (r *ProductRepo) Delete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListByCompany lista productos de la empresa, más recientes primero.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByCategory lista productos de una categoría dentro de la empresa.
func (r *ProductRepo) ListByCategory(ctx context.Context, companyID, categoryID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 AND category_id = $2 ORDER BY name`
	rows, err := r.q.Query(ctx, query, companyID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Search busca productos por nombre o SKU dentro de la empresa.
func (r *ProductRepo) Search(ctx context.Context, companyID, query string) ([]*entity.Product, error) {
	sql := `SELECT ` + productColumns + `
		FROM products
		WHERE company_id = $1 AND (name ILIKE '%' || $2 || '%' OR sku ILIKE '%' || $2 || '%')
		ORDER BY name
		LIMIT 50`
	rows, err := r.q.Query(ctx, sql, companyID, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.CategoryID, &p.Name, &p.SKU, &p.Source,
			&p.BuyingPrice, &p.ManufacturePrice, &p.SellingPrice, &p.MinSellingPrice,
			&p.Stock, &p.Specifications, &p.ImageURL, &p.CreatedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
