package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertProductRequest entrada para crear o incrementar un producto.
// Si ya existe un producto con el mismo nombre (case-insensitive) en la
// empresa, TotalStock se suma al existente en lugar de crear uno nuevo.
type UpsertProductRequest struct {
	ProductName string          `json:"productName" validate:"required,min=1,max=200"`
	Category    string          `json:"category"`
	ItemCode    string          `json:"itemCode"`
	StockType   string          `json:"stockType"`
	TotalStock  int64           `json:"totalStock" validate:"min=0"`
	DealerPrice decimal.Decimal `json:"dealerPrice"`
	TotalValue  decimal.Decimal `json:"totalValue"`
}

// BulkUpsertProductsRequest lote de productos (carga masiva o importación Excel).
type BulkUpsertProductsRequest struct {
	Items []UpsertProductRequest `json:"items" validate:"required,min=1,dive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	ProductName string          `json:"productName"`
	Category    string          `json:"category"`
	ItemCode    string          `json:"itemCode"`
	StockType   string          `json:"stockType"`
	TotalStock  int64           `json:"totalStock"`
	DealerPrice decimal.Decimal `json:"dealerPrice"`
	TotalValue  decimal.Decimal `json:"totalValue"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportResultResponse resultado de la importación de un archivo Excel.
type ImportResultResponse struct {
	RowsDetected int `json:"rowsDetected"` // filas válidas encontradas en el archivo
	RowsApplied  int `json:"rowsApplied"`  // filas creadas o fusionadas en el catálogo
}
