package usecase

import (
	"github.com/google/uuid"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// WorkerUseCase altas y listados de trabajadores (receptores de entregas).
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create registra un trabajador en la empresa.
func (uc *WorkerUseCase) Create(companyID string, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	worker := &entity.Worker{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Gender:    in.Gender,
		Mobile:    in.Mobile,
	}
	if err := uc.repo.Create(worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// List lista trabajadores de la empresa con paginación.
func (uc *WorkerUseCase) List(companyID string, limit, offset int) (*dto.WorkerListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWorkerResponse(w))
	}
	return &dto.WorkerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Gender:    w.Gender,
		Mobile:    w.Mobile,
	}
}
