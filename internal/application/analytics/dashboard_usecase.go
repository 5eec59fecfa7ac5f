// Package analytics contiene los casos de uso de la pantalla principal:
// estado del catálogo, volumen distribuido y rankings recientes.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5 // productos en el widget de ranking
	dashboardTopWorkers  = 8 // trabajadores en el widget de ranking
	dashboardTrendDays   = 7 // días de la tendencia
	lowStockThreshold    = 5 // stock por debajo de este valor cuenta como bajo
)

// DashboardUseCase genera el resumen de la pantalla principal.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Cinco llamadas en paralelo:
//  1. GetStockSummary             → estado del catálogo
//  2. GetDistributionTotals(todo) → TotalDistributed + TotalValue
//  3. GetDistributionTotals(hoy)  → DistributedToday
//  4. GetTopProducts + GetTopWorkers (últimos 30 días)
//  5. GetDailyTrend (últimos 7 días)
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	companyID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := todayStart.AddDate(0, 0, -30)
	trendStart := todayStart.AddDate(0, 0, -(dashboardTrendDays - 1))
	allStart := time.Time{} // el libro entero

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type stockResult struct {
		summary *repository.StockSummary
		err     error
	}
	type totalsResult struct {
		units int64
		value decimal.Decimal
		err   error
	}
	type rankingResult struct {
		rows []repository.NameQuantity
		err  error
	}
	type trendResult struct {
		rows []repository.DailyQuantity
		err  error
	}

	stockCh := make(chan stockResult, 1)
	allCh := make(chan totalsResult, 1)
	todayCh := make(chan totalsResult, 1)
	productsCh := make(chan rankingResult, 1)
	workersCh := make(chan rankingResult, 1)
	trendCh := make(chan trendResult, 1)

	go func() {
		s, err := uc.analyticsRepo.GetStockSummary(ctx, companyID, lowStockThreshold)
		stockCh <- stockResult{s, err}
	}()
	go func() {
		units, value, err := uc.analyticsRepo.GetDistributionTotals(ctx, companyID, allStart, todayEnd)
		allCh <- totalsResult{units, value, err}
	}()
	go func() {
		units, _, err := uc.analyticsRepo.GetDistributionTotals(ctx, companyID, todayStart, todayEnd)
		todayCh <- totalsResult{units: units, err: err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, companyID, monthStart, todayEnd, dashboardTopProducts)
		productsCh <- rankingResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopWorkers(ctx, companyID, monthStart, todayEnd, dashboardTopWorkers)
		workersCh <- rankingResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetDailyTrend(ctx, companyID, trendStart, todayEnd)
		trendCh <- trendResult{rows, err}
	}()

	stock := <-stockCh
	all := <-allCh
	today := <-todayCh
	products := <-productsCh
	workers := <-workersCh
	trend := <-trendCh

	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: resumen de stock: %w", stock.err)
	}
	if all.err != nil {
		return nil, fmt.Errorf("dashboard: totales del libro: %w", all.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard: totales de hoy: %w", today.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", products.err)
	}
	if workers.err != nil {
		return nil, fmt.Errorf("dashboard: top trabajadores: %w", workers.err)
	}
	if trend.err != nil {
		return nil, fmt.Errorf("dashboard: tendencia diaria: %w", trend.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.DashboardSummaryDTO{
		TotalProducts:    stock.summary.TotalProducts,
		TotalInventory:   stock.summary.TotalInventory,
		OutOfStock:       stock.summary.OutOfStock,
		LowStock:         stock.summary.LowStock,
		TotalDistributed: all.units,
		DistributedToday: today.units,
		TotalValue:       all.value.Round(2),
		TopProducts:      toNameQuantityDTOs(products.rows),
		TopWorkers:       toNameQuantityDTOs(workers.rows),
		RecentTrend:      toTrendDTOs(trend.rows),
	}, nil
}

func toNameQuantityDTOs(rows []repository.NameQuantity) []dto.NameQuantityDTO {
	out := make([]dto.NameQuantityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NameQuantityDTO{Name: r.Name, Quantity: r.Quantity})
	}
	return out
}

func toTrendDTOs(rows []repository.DailyQuantity) []dto.TrendPointDTO {
	out := make([]dto.TrendPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TrendPointDTO{Date: r.Date.Format("2006-01-02"), Quantity: r.Quantity})
	}
	return out
}
