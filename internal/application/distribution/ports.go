package distribution

import (
	"context"

	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// distribución: o el lote completo se confirma, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		distRepo repository.DistributionRepository,
	) error) error
}
