package repository

import (
	"time"

	"github.com/yourcompany/distribucion-api/internal/domain/entity"
)

// DistributionFilter filtros para listar el libro de distribuciones.
// Todos los campos son opcionales; cero = sin filtro.
type DistributionFilter struct {
	From            *time.Time
	To              *time.Time
	WorkerName      string // subcadena, case-insensitive (búsqueda)
	WorkerNameExact string // igualdad estricta; tiene prioridad sobre WorkerName
	ProductName     string // subcadena, case-insensitive
	Limit           int
	Offset          int
}

// DistributionRepository define el puerto del libro de distribuciones.
// El contrato es append-only: no existe actualización ni borrado.
type DistributionRepository interface {
	Append(d *entity.Distribution) error
	ListByCompany(companyID string, filter DistributionFilter) ([]*entity.Distribution, error)
}
