package postgres

import (
	"context"
	"fmt"

	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

var _ repository.DistributionRepository = (*DistributionRepo)(nil)

// DistributionRepo implementación del libro de distribuciones sobre PostgreSQL
// (usable con pool o tx). El puerto es append-only: no hay UPDATE ni DELETE.
type DistributionRepo struct {
	q Querier
}

// NewDistributionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDistributionRepository(q Querier) *DistributionRepo {
	return &DistributionRepo{q: q}
}

// Append persiste una entrada del libro.
func (r *DistributionRepo) Append(d *entity.Distribution) error {
	query := `
		INSERT INTO distributions (id, company_id, worker_id, worker_name, product_id, product_name, quantity, price_per_unit, total_amount, distributed_by, distributed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.CompanyID, d.WorkerID, d.WorkerName, d.ProductID, d.ProductName,
		d.Quantity, d.PricePerUnit, d.TotalAmount, d.DistributedBy, d.DistributedAt,
	)
	if err != nil {
		return fmt.Errorf("append distribution: %w", err)
	}
	return nil
}

// ListByCompany lista el libro de una empresa, más reciente primero, con
// filtros opcionales de fecha y subcadena por trabajador/producto.
func (r *DistributionRepo) ListByCompany(companyID string, filter repository.DistributionFilter) ([]*entity.Distribution, error) {
	query := `
		SELECT id, company_id, worker_id, worker_name, product_id, product_name, quantity, price_per_unit, total_amount, distributed_by, distributed_at
		FROM distributions WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.From != nil {
		query += fmt.Sprintf(" AND distributed_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND distributed_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	if filter.WorkerNameExact != "" {
		// Igualdad estricta: alcance propio de un Worker, nunca subcadena.
		query += fmt.Sprintf(" AND worker_name = $%d", pos)
		args = append(args, filter.WorkerNameExact)
		pos++
	} else if filter.WorkerName != "" {
		query += fmt.Sprintf(" AND worker_name ILIKE $%d", pos)
		args = append(args, "%"+filter.WorkerName+"%")
		pos++
	}
	if filter.ProductName != "" {
		query += fmt.Sprintf(" AND product_name ILIKE $%d", pos)
		args = append(args, "%"+filter.ProductName+"%")
		pos++
	}
	query += " ORDER BY distributed_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Distribution
	for rows.Next() {
		var d entity.Distribution
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.WorkerID, &d.WorkerName, &d.ProductID, &d.ProductName,
			&d.Quantity, &d.PricePerUnit, &d.TotalAmount, &d.DistributedBy, &d.DistributedAt); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
