package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
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

const productColumns = `id, company_id, product_name, category, item_code, stock_type, total_stock, dealer_price, total_value, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, product_name, category, item_code, stock_type, total_stock, dealer_price, total_value, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.ProductName, product.Category,
		product.ItemCode, product.StockType, product.TotalStock,
		product.DealerPrice, product.TotalValue, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByCompanyAndName busca por nombre dentro de la empresa, case-insensitive.
// Lo usa la entrada de stock para fusionar filas duplicadas del mismo producto.
func (r *ProductRepo) GetByCompanyAndName(companyID, productName string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE company_id = $1 AND LOWER(product_name) = LOWER($2)
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, productName), "get product by name")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza los campos del catálogo, incluido el stock (la entrada de
// stock lo suma; el motor de distribución usa UpdateStock bajo bloqueo).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET product_name = $2, category = $3, item_code = $4, stock_type = $5,
		    total_stock = $6, dealer_price = $7, total_value = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ProductName, product.Category, product.ItemCode, product.StockType,
		product.TotalStock, product.DealerPrice, product.TotalValue, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock reemplaza el stock total del producto (motor de distribución).
func (r *ProductRepo) UpdateStock(productID string, totalStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET total_stock = $2, updated_at = now() WHERE id = $1`,
		productID, totalStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByCompany lista productos por empresa con paginación.
func (r *ProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE company_id = $1 ORDER BY product_name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.ProductName, &p.Category, &p.ItemCode, &p.StockType,
			&p.TotalStock, &p.DealerPrice, &p.TotalValue, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.ProductName, &p.Category, &p.ItemCode, &p.StockType,
		&p.TotalStock, &p.DealerPrice, &p.TotalValue, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
