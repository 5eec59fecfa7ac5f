package stockentry

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// TxRunner contrato mínimo de transacción que necesita la entrada de stock.
// Lo implementa postgres.TxRunner; el repositorio de distribuciones se ignora.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		distRepo repository.DistributionRepository,
	) error) error
}

// WorkbookParser extrae filas de producto de un archivo Excel (best-effort).
// Lo implementa excel.Importer.
type WorkbookParser interface {
	Parse(r io.Reader) ([]dto.UpsertProductRequest, error)
}

// StockEntryUseCase alta e incremento de stock del catálogo: entrada manual,
// carga masiva e importación desde Excel.
type StockEntryUseCase struct {
	txRunner TxRunner
	parser   WorkbookParser
}

// NewStockEntryUseCase construye el caso de uso.
func NewStockEntryUseCase(txRunner TxRunner, parser WorkbookParser) *StockEntryUseCase {
	return &StockEntryUseCase{txRunner: txRunner, parser: parser}
}

// Upsert crea el producto o, si ya existe uno con el mismo nombre en la
// empresa (comparación case-insensitive), le suma TotalStock y refresca la
// categoría si viene informada. Devuelve el producto resultante.
func (uc *StockEntryUseCase) Upsert(ctx context.Context, companyID string, in dto.UpsertProductRequest) (*dto.ProductResponse, error) {
	if companyID == "" || strings.TrimSpace(in.ProductName) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ProductResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.DistributionRepository,
	) error {
		product, err := uc.upsertOne(productRepo, companyID, in)
		if err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkUpsert aplica Upsert a cada fila dentro de una sola transacción:
// una importación parcial dejaría el catálogo a medias.
func (uc *StockEntryUseCase) BulkUpsert(ctx context.Context, companyID string, items []dto.UpsertProductRequest) (int, error) {
	if companyID == "" || len(items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	applied := 0
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.DistributionRepository,
	) error {
		for _, in := range items {
			if strings.TrimSpace(in.ProductName) == "" || in.TotalStock < 0 {
				continue
			}
			if _, err := uc.upsertOne(productRepo, companyID, in); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// ImportWorkbook parsea un archivo Excel con el detector heurístico de
// columnas y aplica las filas válidas como carga masiva.
func (uc *StockEntryUseCase) ImportWorkbook(ctx context.Context, companyID string, r io.Reader) (*dto.ImportResultResponse, error) {
	items, err := uc.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	applied, err := uc.BulkUpsert(ctx, companyID, items)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultResponse{
		RowsDetected: len(items),
		RowsApplied:  applied,
	}, nil
}

func (uc *StockEntryUseCase) upsertOne(
	productRepo repository.ProductRepository,
	companyID string,
	in dto.UpsertProductRequest,
) (*entity.Product, error) {
	name := strings.TrimSpace(in.ProductName)
	now := time.Now()

	existing, err := productRepo.GetByCompanyAndName(companyID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.TotalStock += in.TotalStock
		if in.Category != "" {
			existing.Category = in.Category
		}
		existing.UpdatedAt = now
		if err := productRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	category := in.Category
	if category == "" {
		category = "General"
	}
	stockType := in.StockType
	if stockType == "" {
		stockType = "Regular"
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ProductName: name,
		Category:    category,
		ItemCode:    in.ItemCode,
		StockType:   stockType,
		TotalStock:  in.TotalStock,
		DealerPrice: in.DealerPrice,
		TotalValue:  in.TotalValue,
		UpdatedAt:   now,
	}
	if err := productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
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
