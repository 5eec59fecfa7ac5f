package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// NameQuantity par nombre/cantidad para rankings (top productos, top trabajadores).
type NameQuantity struct {
	Name     string
	Quantity int64
}

// DailyQuantity unidades distribuidas por día (tendencia).
type DailyQuantity struct {
	Date     time.Time
	Quantity int64
}

// StockSummary agregados del catálogo de una empresa.
type StockSummary struct {
	TotalProducts  int64
	TotalInventory int64 // suma de totalStock
	OutOfStock     int64 // totalStock == 0
	LowStock       int64 // 0 < totalStock < umbral
}

// AnalyticsRepository consultas de solo lectura para el dashboard y la analítica.
// Los agregados se calculan en SQL, no en memoria.
type AnalyticsRepository interface {
	GetStockSummary(ctx context.Context, companyID string, lowStockThreshold int64) (*StockSummary, error)
	// GetTopProducts productos con más unidades distribuidas en el período.
	GetTopProducts(ctx context.Context, companyID string, from, to time.Time, limit int) ([]NameQuantity, error)
	// GetTopWorkers trabajadores con más unidades recibidas en el período.
	GetTopWorkers(ctx context.Context, companyID string, from, to time.Time, limit int) ([]NameQuantity, error)
	// GetDailyTrend unidades distribuidas por día del período.
	GetDailyTrend(ctx context.Context, companyID string, from, to time.Time) ([]DailyQuantity, error)
	// GetDistributionTotals unidades y valor total del libro en el período.
	GetDistributionTotals(ctx context.Context, companyID string, from, to time.Time) (units int64, value decimal.Decimal, err error)
}
