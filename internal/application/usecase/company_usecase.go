package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (setup del tenant).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Setup crea la empresa. Devuelve domain.ErrDuplicate si el nombre ya existe
// (el nombre de empresa es único en todo el sistema).
func (uc *CompanyUseCase) Setup(in dto.SetupCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetCurrent devuelve la empresa creada más recientemente (pantalla de setup:
// el cliente consulta si ya hay empresa antes de mostrar el registro).
func (uc *CompanyUseCase) GetCurrent() (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetLatest()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
