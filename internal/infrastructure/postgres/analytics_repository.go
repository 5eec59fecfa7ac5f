package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard. Los agregados se
// calculan en SQL; no se pagina nada en memoria.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetStockSummary agregados del catálogo: total de productos, inventario
// acumulado, productos sin stock y productos con stock bajo el umbral.
func (r *AnalyticsRepo) GetStockSummary(
	ctx context.Context,
	companyID string,
	lowStockThreshold int64,
) (*repository.StockSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                                                        AS total_products,
	    COALESCE(SUM(total_stock), 0)                                   AS total_inventory,
	    COUNT(*) FILTER (WHERE total_stock = 0)                         AS out_of_stock,
	    COUNT(*) FILTER (WHERE total_stock > 0 AND total_stock < $2)    AS low_stock
	FROM products
	WHERE company_id = $1`

	var s repository.StockSummary
	err := r.pool.QueryRow(ctx, query, companyID, lowStockThreshold).Scan(
		&s.TotalProducts, &s.TotalInventory, &s.OutOfStock, &s.LowStock,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStockSummary: %w", err)
	}
	return &s, nil
}

// GetTopProducts devuelve los `limit` productos con más unidades distribuidas en el período.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	companyID string,
	from, to time.Time,
	limit int,
) ([]repository.NameQuantity, error) {
	const query = `
	SELECT product_name, SUM(quantity) AS units
	FROM distributions
	WHERE company_id = $1
	  AND distributed_at BETWEEN $2 AND $3
	GROUP BY product_name
	ORDER BY units DESC
	LIMIT $4`
	return r.queryRanking(ctx, query, "analytics.GetTopProducts", companyID, from, to, limit)
}

// GetTopWorkers devuelve los `limit` trabajadores con más unidades recibidas en el período.
func (r *AnalyticsRepo) GetTopWorkers(
	ctx context.Context,
	companyID string,
	from, to time.Time,
	limit int,
) ([]repository.NameQuantity, error) {
	const query = `
	SELECT worker_name, SUM(quantity) AS units
	FROM distributions
	WHERE company_id = $1
	  AND distributed_at BETWEEN $2 AND $3
	GROUP BY worker_name
	ORDER BY units DESC
	LIMIT $4`
	return r.queryRanking(ctx, query, "analytics.GetTopWorkers", companyID, from, to, limit)
}

// GetDailyTrend unidades distribuidas por día del período, en orden cronológico.
// Los días sin entregas no aparecen; el cliente rellena los huecos.
func (r *AnalyticsRepo) GetDailyTrend(
	ctx context.Context,
	companyID string,
	from, to time.Time,
) ([]repository.DailyQuantity, error) {
	const query = `
	SELECT date_trunc('day', distributed_at) AS day, SUM(quantity) AS units
	FROM distributions
	WHERE company_id = $1
	  AND distributed_at BETWEEN $2 AND $3
	GROUP BY day
	ORDER BY day ASC`

	rows, err := r.pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDailyTrend: %w", err)
	}
	defer rows.Close()

	results := []repository.DailyQuantity{}
	for rows.Next() {
		var row repository.DailyQuantity
		if err := rows.Scan(&row.Date, &row.Quantity); err != nil {
			return nil, fmt.Errorf("analytics.GetDailyTrend scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetDistributionTotals unidades y valor total del libro en el período.
// Usa COALESCE para devolver cero si no hay filas (período sin entregas).
func (r *AnalyticsRepo) GetDistributionTotals(
	ctx context.Context,
	companyID string,
	from, to time.Time,
) (units int64, value decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity),     0) AS units,
	    COALESCE(SUM(total_amount), 0) AS value
	FROM distributions
	WHERE company_id = $1
	  AND distributed_at BETWEEN $2 AND $3`

	err = r.pool.QueryRow(ctx, query, companyID, from, to).Scan(&units, &value)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("analytics.GetDistributionTotals: %w", err)
	}
	return units, value, nil
}

func (r *AnalyticsRepo) queryRanking(
	ctx context.Context,
	query, op, companyID string,
	from, to time.Time,
	limit int,
) ([]repository.NameQuantity, error) {
	rows, err := r.pool.Query(ctx, query, companyID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	results := []repository.NameQuantity{}
	for rows.Next() {
		var row repository.NameQuantity
		if err := rows.Scan(&row.Name, &row.Quantity); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
