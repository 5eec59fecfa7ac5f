package usecase

import (
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// ProductUseCase consultas del catálogo. Las altas e incrementos de stock se
// manejan en stockentry; los descuentos, en distribution.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return productToResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *productToResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		ProductName: p.ProductName,
		Category:    p.Category,
		ItemCode:    p.ItemCode,
		StockType:   p.StockType,
		TotalStock:  p.TotalStock,
		DealerPrice: p.DealerPrice,
		TotalValue:  p.TotalValue,
		UpdatedAt:   p.UpdatedAt,
	}
}
