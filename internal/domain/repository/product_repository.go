package repository

import "github.com/yourcompany/distribucion-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByCompanyAndName busca por nombre de producto (case-insensitive) dentro
	// de la empresa; lo usa la entrada de stock para fusionar duplicados.
	GetByCompanyAndName(companyID, productName string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock reemplaza el stock total del producto (usado por el motor
	// de distribución bajo bloqueo de fila).
	UpdateStock(productID string, totalStock int64) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error)
}
