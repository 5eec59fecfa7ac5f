package repository

import "github.com/yourcompany/distribucion-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	// GetLatest devuelve la empresa creada más recientemente (flujo de setup
	// del cliente: una sola empresa por instalación en la práctica).
	GetLatest() (*entity.Company, error)
}
