package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Distribution representa una entrega registrada de un producto a un
// trabajador: una fila por línea de producto por evento de entrega.
// Es historia inmutable: nunca se actualiza ni se borra después de creada.
// WorkerName y ProductName son snapshots denormalizados al momento de
// escribir; no se sincronizan con renombres posteriores.
type Distribution struct {
	ID            string
	CompanyID     string
	WorkerID      string
	WorkerName    string
	ProductID     string
	ProductName   string
	Quantity      int64
	PricePerUnit  decimal.Decimal
	TotalAmount   decimal.Decimal // Quantity × PricePerUnit, calculado al crear
	DistributedBy string          // nombre del usuario que registró la entrega
	DistributedAt time.Time
}
