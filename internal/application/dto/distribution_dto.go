package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DistributionLineRequest una línea (producto, cantidad, precio) de un lote.
// PricePerUnit es opcional y por defecto 0.
type DistributionLineRequest struct {
	ProductID    string          `json:"productId" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// CreateDistributionRequest lote de entrega para un trabajador.
// Acepta también la forma de una sola línea del cliente más antiguo
// (productId/quantity/pricePerUnit en la raíz, sin items).
type CreateDistributionRequest struct {
	WorkerID string                    `json:"workerId" validate:"required"`
	Items    []DistributionLineRequest `json:"items"`

	// Forma de una sola línea (compatibilidad).
	ProductID    string          `json:"productId"`
	Quantity     int64           `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// Lines normaliza el request a una lista de líneas, aceptando ambas formas.
func (r *CreateDistributionRequest) Lines() []DistributionLineRequest {
	if len(r.Items) > 0 {
		return r.Items
	}
	if r.ProductID != "" {
		return []DistributionLineRequest{{
			ProductID:    r.ProductID,
			Quantity:     r.Quantity,
			PricePerUnit: r.PricePerUnit,
		}}
	}
	return nil
}

// DistributionResponse salida de una entrada del libro de distribuciones.
type DistributionResponse struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"companyId"`
	WorkerID      string          `json:"workerId"`
	WorkerName    string          `json:"workerName"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      int64           `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DistributedBy string          `json:"distributedBy"`
	DistributedAt time.Time       `json:"distributedAt"`
}

// DistributionListResponse resultado de GET /api/distributions.
type DistributionListResponse struct {
	Items []DistributionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
