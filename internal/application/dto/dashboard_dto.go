package dto

import "github.com/shopspring/decimal"

// NameQuantityDTO par nombre/cantidad para rankings del dashboard.
type NameQuantityDTO struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// TrendPointDTO unidades distribuidas en un día.
type TrendPointDTO struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Quantity int64  `json:"quantity"`
}

// DashboardSummaryDTO resumen para la pantalla principal: estado del catálogo,
// volumen distribuido y rankings del período reciente.
type DashboardSummaryDTO struct {
	TotalProducts    int64             `json:"totalProducts"`
	TotalInventory   int64             `json:"totalInventory"`
	OutOfStock       int64             `json:"outOfStock"`
	LowStock         int64             `json:"lowStock"`
	TotalDistributed int64             `json:"totalDistributed"`
	DistributedToday int64             `json:"distributedToday"`
	TotalValue       decimal.Decimal   `json:"totalValue"`
	TopProducts      []NameQuantityDTO `json:"topProducts"`
	TopWorkers       []NameQuantityDTO `json:"topWorkers"`
	RecentTrend      []TrendPointDTO   `json:"recentTrend"`
}
