package stockentry_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/stockentry"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product // por ID
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (f *fakeProductRepo) GetByCompanyAndName(companyID, name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.CompanyID == companyID && strings.EqualFold(p.ProductName, name) {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.GetByID(id) }
func (f *fakeProductRepo) Update(p *entity.Product) error                  { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateStock(id string, totalStock int64) error {
	f.products[id].TotalStock = totalStock
	return nil
}
func (f *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

type noopDistRepo struct{}

func (noopDistRepo) Append(*entity.Distribution) error { return nil }
func (noopDistRepo) ListByCompany(string, repository.DistributionFilter) ([]*entity.Distribution, error) {
	return nil, nil
}

type fakeTxRunner struct {
	productRepo *fakeProductRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	distRepo repository.DistributionRepository,
) error) error {
	return fn(f.productRepo, noopDistRepo{})
}

type fakeParser struct {
	items []dto.UpsertProductRequest
	err   error
}

func (f *fakeParser) Parse(r io.Reader) ([]dto.UpsertProductRequest, error) { return f.items, f.err }

const companyID = "empresa-1"

func newUseCase(parser stockentry.WorkbookParser) (*stockentry.StockEntryUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{products: map[string]*entity.Product{}}
	return stockentry.NewStockEntryUseCase(&fakeTxRunner{productRepo: repo}, parser), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsert_ProductoNuevo_AplicaDefaults(t *testing.T) {
	uc, repo := newUseCase(nil)

	out, err := uc.Upsert(context.Background(), companyID, dto.UpsertProductRequest{
		ProductName: "Cemento Gris",
		TotalStock:  40,
	})
	require.NoError(t, err)

	assert.Equal(t, "Cemento Gris", out.ProductName)
	assert.Equal(t, "General", out.Category, "categoría por defecto")
	assert.Equal(t, "Regular", out.StockType, "tipo de stock por defecto")
	assert.Equal(t, int64(40), out.TotalStock)
	assert.Len(t, repo.products, 1)
}

func TestUpsert_NombreExistente_SumaStock(t *testing.T) {
	uc, repo := newUseCase(nil)
	ctx := context.Background()

	first, err := uc.Upsert(ctx, companyID, dto.UpsertProductRequest{
		ProductName: "Cemento Gris", Category: "Construcción", TotalStock: 40,
	})
	require.NoError(t, err)

	// Mismo nombre con distinta capitalización: debe fusionar, no duplicar.
	second, err := uc.Upsert(ctx, companyID, dto.UpsertProductRequest{
		ProductName: "cemento gris", TotalStock: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "debe actualizarse la misma fila")
	assert.Equal(t, int64(50), second.TotalStock, "40 + 10 = 50")
	assert.Equal(t, "Construcción", second.Category, "categoría vacía no pisa la existente")
	assert.Len(t, repo.products, 1, "no debe crearse un segundo producto")
}

func TestUpsert_EntradasInvalidas(t *testing.T) {
	uc, _ := newUseCase(nil)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, companyID, dto.UpsertProductRequest{ProductName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Upsert(ctx, companyID, dto.UpsertProductRequest{ProductName: "X", TotalStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock negativo")
}

func TestBulkUpsert_SaltaFilasInvalidas(t *testing.T) {
	uc, repo := newUseCase(nil)

	applied, err := uc.BulkUpsert(context.Background(), companyID, []dto.UpsertProductRequest{
		{ProductName: "Arena", TotalStock: 10},
		{ProductName: "", TotalStock: 5},       // sin nombre: se salta
		{ProductName: "Grava", TotalStock: -2}, // negativo: se salta
		{ProductName: "arena", TotalStock: 5},  // fusiona con Arena
	})
	require.NoError(t, err)

	assert.Equal(t, 2, applied, "solo las filas válidas cuentan")
	assert.Len(t, repo.products, 1)
	for _, p := range repo.products {
		assert.Equal(t, int64(15), p.TotalStock, "10 + 5 fusionado")
	}
}

func TestImportWorkbook_AplicaFilasDelParser(t *testing.T) {
	parser := &fakeParser{items: []dto.UpsertProductRequest{
		{ProductName: "Ladrillo", TotalStock: 100, DealerPrice: decimal.NewFromInt(2)},
		{ProductName: "", TotalStock: 5}, // el parser puede traer basura
	}}
	uc, repo := newUseCase(parser)

	out, err := uc.ImportWorkbook(context.Background(), companyID, strings.NewReader("xlsx"))
	require.NoError(t, err)

	assert.Equal(t, 2, out.RowsDetected)
	assert.Equal(t, 1, out.RowsApplied)
	assert.Len(t, repo.products, 1)
}

func TestImportWorkbook_ArchivoVacio(t *testing.T) {
	uc, _ := newUseCase(&fakeParser{})

	_, err := uc.ImportWorkbook(context.Background(), companyID, strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
