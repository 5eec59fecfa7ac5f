package distribution_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourcompany/distribucion-api/internal/application/distribution"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo catálogo en memoria con snapshot para simular rollback.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) GetByCompanyAndName(companyID, name string) (*entity.Product, error) {
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

// fakeDistRepo libro append-only en memoria.
type fakeDistRepo struct {
	entries []*entity.Distribution
}

func (f *fakeDistRepo) Append(d *entity.Distribution) error { f.entries = append(f.entries, d); return nil }
func (f *fakeDistRepo) ListByCompany(companyID string, filter repository.DistributionFilter) ([]*entity.Distribution, error) {
	return f.entries, nil
}

// fakeWorkerRepo trabajadores en memoria.
type fakeWorkerRepo struct {
	workers map[string]*entity.Worker
}

func (f *fakeWorkerRepo) Create(w *entity.Worker) error { f.workers[w.ID] = w; return nil }
func (f *fakeWorkerRepo) GetByID(id string) (*entity.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}
func (f *fakeWorkerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Worker, error) {
	return nil, nil
}

// fakeTxRunner simula la transacción: si fn falla, restaura el snapshot del
// catálogo y descarta lo anotado en el libro (rollback).
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	distRepo    *fakeDistRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	distRepo repository.DistributionRepository,
) error) error {
	snapshot := make(map[string]*entity.Product, len(f.productRepo.products))
	for id, p := range f.productRepo.products {
		cp := *p
		snapshot[id] = &cp
	}
	entriesBefore := len(f.distRepo.entries)

	if err := fn(f.productRepo, f.distRepo); err != nil {
		f.productRepo.products = snapshot
		f.distRepo.entries = f.distRepo.entries[:entriesBefore]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyID = "empresa-1"
	workerID  = "trabajador-1"
)

type fixture struct {
	uc       *distribution.DistributeUseCase
	products *fakeProductRepo
	ledger   *fakeDistRepo
}

func newFixture(t *testing.T, products ...*entity.Product) *fixture {
	t.Helper()
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		productRepo.products[p.ID] = p
	}
	distRepo := &fakeDistRepo{}
	workerRepo := &fakeWorkerRepo{workers: map[string]*entity.Worker{
		workerID: {ID: workerID, CompanyID: companyID, Name: "Pedro Martínez"},
	}}
	txRunner := &fakeTxRunner{productRepo: productRepo, distRepo: distRepo}
	return &fixture{
		uc:       distribution.NewDistributeUseCase(txRunner, workerRepo),
		products: productRepo,
		ledger:   distRepo,
	}
}

func product(id string, stock int64) *entity.Product {
	return &entity.Product{
		ID:          id,
		CompanyID:   companyID,
		ProductName: "Producto " + id,
		TotalStock:  stock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Entrega simple: stock 10, se entregan 4 a precio 50 → stock 6, total 200.
func TestDistribute_EntregaValida_DescuentaStockYAnota(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	created, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 4, PricePerUnit: decimal.NewFromInt(50)},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	assert.Equal(t, int64(6), fx.products.products["p1"].TotalStock,
		"el stock debe quedar en 10 - 4 = 6")
	assert.True(t, created[0].TotalAmount.Equal(decimal.NewFromInt(200)),
		"totalAmount debe ser 4 × 50 = 200, fue %s", created[0].TotalAmount)
	assert.Equal(t, "Pedro Martínez", created[0].WorkerName, "el nombre del trabajador se desnormaliza")
	assert.Equal(t, "Laura Gómez", created[0].DistributedBy)
	require.Len(t, fx.ledger.entries, 1)
}

// Stock insuficiente: stock 10, se piden 11 → error tipado, nada cambia.
func TestDistribute_StockInsuficiente_RechazaSinEfecto(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	_, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 11, PricePerUnit: decimal.NewFromInt(50)},
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(11), stockErr.Requested)
	assert.Equal(t, int64(10), stockErr.Available)

	assert.Equal(t, int64(10), fx.products.products["p1"].TotalStock, "el stock no debe cambiar")
	assert.Empty(t, fx.ledger.entries, "no debe anotarse nada en el libro")
}

// Lote todo-o-nada: p1 alcanza pero p2 no → se rechaza el lote entero.
func TestDistribute_LoteConUnaLineaInvalida_RechazaTodo(t *testing.T) {
	fx := newFixture(t, product("p1", 5), product("p2", 0))

	_, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 3, PricePerUnit: decimal.NewFromInt(10)},
		{ProductID: "p2", Quantity: 1, PricePerUnit: decimal.NewFromInt(10)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), fx.products.products["p1"].TotalStock,
		"p1 no debe descontarse aunque su línea era válida")
	assert.Equal(t, int64(0), fx.products.products["p2"].TotalStock)
	assert.Empty(t, fx.ledger.entries)
}

// Lote con líneas repetidas del mismo producto: la validación acumula, el
// stock nunca queda negativo.
func TestDistribute_LineasRepetidas_AcumulaValidacion(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	// 6 + 6 = 12 > 10: debe rechazarse aunque cada línea por separado alcance.
	_, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 6, PricePerUnit: decimal.Zero},
		{ProductID: "p1", Quantity: 6, PricePerUnit: decimal.Zero},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), fx.products.products["p1"].TotalStock)

	// 6 + 4 = 10: justo el stock disponible, debe pasar y dejar 0.
	created, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 6, PricePerUnit: decimal.Zero},
		{ProductID: "p1", Quantity: 4, PricePerUnit: decimal.Zero},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, int64(0), fx.products.products["p1"].TotalStock)
}

// Precio cero (por defecto): totalAmount debe ser exactamente 0.
func TestDistribute_PrecioCero_TotalCero(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	created, err := fx.uc.Distribute(context.Background(), companyID, "", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 3, PricePerUnit: decimal.Zero},
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	assert.True(t, created[0].TotalAmount.IsZero(), "3 × 0 debe ser exactamente 0")
	assert.Equal(t, "System Administrator", created[0].DistributedBy,
		"sin actor, el libro registra System Administrator")
}

// Precio decimal: 3 × 19.99 = 59.97 exacto, sin error de flotante.
func TestDistribute_PrecioDecimal_TotalExacto(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	price, err := decimal.NewFromString("19.99")
	require.NoError(t, err)

	created, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 3, PricePerUnit: price},
	})
	require.NoError(t, err)

	expected, _ := decimal.NewFromString("59.97")
	assert.True(t, created[0].TotalAmount.Equal(expected),
		"3 × 19.99 debe ser exactamente 59.97, fue %s", created[0].TotalAmount)
}

// Entrega que agota el stock: quantity == totalStock debe pasar y dejar 0.
func TestDistribute_AgotaStock_QuedaEnCero(t *testing.T) {
	fx := newFixture(t, product("p1", 7))

	_, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 7, PricePerUnit: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), fx.products.products["p1"].TotalStock)
}

// Trabajador inexistente o de otra empresa → ErrWorkerNotFound.
func TestDistribute_TrabajadorInexistente(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	_, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", "no-existe", []distribution.LineItem{
		{ProductID: "p1", Quantity: 1, PricePerUnit: decimal.Zero},
	})
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
	assert.Empty(t, fx.ledger.entries)
}

// Producto de otra empresa → ErrProductNotFound, sin efecto.
func TestDistribute_ProductoDeOtraEmpresa(t *testing.T) {
	other := product("p1", 10)
	other.CompanyID = "otra-empresa"
	fx := newFixture(t, other)

	_, err := fx.uc.Distribute(context.Background(), companyID, "Laura Gómez", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 1, PricePerUnit: decimal.Zero},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, int64(10), fx.products.products["p1"].TotalStock)
	assert.Empty(t, fx.ledger.entries)
}

// Entradas inválidas: cantidad cero o negativa, sin líneas, precio negativo.
func TestDistribute_EntradasInvalidas(t *testing.T) {
	fx := newFixture(t, product("p1", 10))
	ctx := context.Background()

	_, err := fx.uc.Distribute(ctx, companyID, "x", workerID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote vacío")

	_, err = fx.uc.Distribute(ctx, companyID, "x", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 0, PricePerUnit: decimal.Zero},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	_, err = fx.uc.Distribute(ctx, companyID, "x", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: -3, PricePerUnit: decimal.Zero},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa")

	_, err = fx.uc.Distribute(ctx, companyID, "x", workerID, []distribution.LineItem{
		{ProductID: "p1", Quantity: 1, PricePerUnit: decimal.NewFromInt(-5)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo")

	assert.Equal(t, int64(10), fx.products.products["p1"].TotalStock)
	assert.Empty(t, fx.ledger.entries)
}

// DistributeFromRequest acepta la forma de una sola línea (cliente viejo).
func TestDistributeFromRequest_FormaDeUnaLinea(t *testing.T) {
	fx := newFixture(t, product("p1", 10))

	created, err := fx.uc.DistributeFromRequest(context.Background(), companyID, "Laura Gómez", dto.CreateDistributionRequest{
		WorkerID:     workerID,
		ProductID:    "p1",
		Quantity:     2,
		PricePerUnit: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.True(t, created[0].TotalAmount.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, int64(8), fx.products.products["p1"].TotalStock)
}
