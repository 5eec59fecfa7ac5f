package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la empresa.
// TotalStock solo se modifica por entradas de stock (suma) y por
// distribuciones (resta); nunca puede quedar negativo.
type Product struct {
	ID          string
	CompanyID   string
	ProductName string
	Category    string
	ItemCode    string
	StockType   string // Regular, Promo, etc.
	TotalStock  int64
	DealerPrice decimal.Decimal
	TotalValue  decimal.Decimal
	UpdatedAt   time.Time
}
