package repository

import "github.com/yourcompany/distribucion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUserIDAndCompany busca por identificador de login dentro de una empresa
	// (userId es único por empresa, no global).
	GetByUserIDAndCompany(userID, companyID string) (*entity.User, error)
	// FindByUserID busca por identificador de login sin filtrar empresa
	// (compatibilidad con el login original, que no enviaba company_id).
	FindByUserID(userID string) (*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
}
