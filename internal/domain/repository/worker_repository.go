package repository

import "github.com/yourcompany/distribucion-api/internal/domain/entity"

// WorkerRepository define el puerto de persistencia para Worker (DIP).
type WorkerRepository interface {
	Create(worker *entity.Worker) error
	GetByID(id string) (*entity.Worker, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Worker, error)
}
