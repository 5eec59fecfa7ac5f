package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// recordingDistRepo guarda el último filtro recibido y devuelve filas fijas.
// Con applyFilter activado reproduce la semántica de nombre del adaptador SQL:
// igualdad para WorkerNameExact, subcadena case-insensitive para WorkerName.
type recordingDistRepo struct {
	lastFilter  repository.DistributionFilter
	rows        []*entity.Distribution
	applyFilter bool
}

func (f *recordingDistRepo) Append(*entity.Distribution) error { return nil }
func (f *recordingDistRepo) ListByCompany(companyID string, filter repository.DistributionFilter) ([]*entity.Distribution, error) {
	f.lastFilter = filter
	if !f.applyFilter {
		return f.rows, nil
	}
	var out []*entity.Distribution
	for _, d := range f.rows {
		switch {
		case filter.WorkerNameExact != "" && d.WorkerName != filter.WorkerNameExact:
		case filter.WorkerNameExact == "" && filter.WorkerName != "" &&
			!strings.Contains(strings.ToLower(d.WorkerName), strings.ToLower(filter.WorkerName)):
		default:
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct{}

func (fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Distribuidora Andina"}, nil
}
func (fakeCompanyRepo) GetByName(string) (*entity.Company, error) { return nil, nil }
func (fakeCompanyRepo) GetLatest() (*entity.Company, error)       { return nil, nil }

type stubExporter struct{ called bool }

func (s *stubExporter) ExportXLSX(companyName string, rows []*entity.Distribution) ([]byte, error) {
	s.called = true
	return []byte("xlsx"), nil
}

type stubPDFGen struct{ called bool }

func (s *stubPDFGen) GenerateLedgerPDF(ctx context.Context, companyName string, rows []*entity.Distribution) ([]byte, error) {
	s.called = true
	return []byte("pdf"), nil
}

func newFixture() (*reports.ReportUseCase, *recordingDistRepo, *stubExporter, *stubPDFGen) {
	distRepo := &recordingDistRepo{}
	exporter := &stubExporter{}
	pdfGen := &stubPDFGen{}
	uc := reports.NewReportUseCase(distRepo, fakeCompanyRepo{}, exporter, pdfGen)
	return uc, distRepo, exporter, pdfGen
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestList_RangoHoy_FiltraDesdeMedianoche(t *testing.T) {
	uc, distRepo, _, _ := newFixture()

	_, err := uc.List("empresa-1", entity.RoleAdmin, "Admin", reports.Query{Range: reports.RangeToday})
	require.NoError(t, err)

	require.NotNil(t, distRepo.lastFilter.From, "today debe fijar From")
	from := *distRepo.lastFilter.From
	assert.Equal(t, 0, from.Hour())
	assert.Equal(t, 0, from.Minute())
	assert.Equal(t, time.Now().Day(), from.Day())
	assert.Nil(t, distRepo.lastFilter.To, "sin cota superior")
}

func TestList_RangoAll_SinFiltroDeFecha(t *testing.T) {
	uc, distRepo, _, _ := newFixture()

	_, err := uc.List("empresa-1", entity.RoleAdmin, "Admin", reports.Query{Range: reports.RangeAll})
	require.NoError(t, err)
	assert.Nil(t, distRepo.lastFilter.From)

	// Vacío equivale a all.
	_, err = uc.List("empresa-1", entity.RoleAdmin, "Admin", reports.Query{})
	require.NoError(t, err)
	assert.Nil(t, distRepo.lastFilter.From)
}

func TestList_RangoInvalido(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.List("empresa-1", entity.RoleAdmin, "Admin", reports.Query{Range: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un Worker solo ve sus propias entregas: el filtro de trabajador se fuerza a
// su nombre con igualdad estricta, aunque pida otro.
func TestList_RolWorker_FuerzaFiltroPropio(t *testing.T) {
	uc, distRepo, _, _ := newFixture()

	_, err := uc.List("empresa-1", entity.RoleWorker, "Pedro Martínez", reports.Query{WorkerName: "Laura Gómez"})
	require.NoError(t, err)
	assert.Equal(t, "Pedro Martínez", distRepo.lastFilter.WorkerNameExact,
		"el filtro pedido por el Worker debe ignorarse")
	assert.Empty(t, distRepo.lastFilter.WorkerName,
		"el alcance propio nunca viaja por el campo de subcadena")
}

// El alcance propio no puede ser por subcadena: "Ana" no debe ver las filas de
// "Ana María". El fake aplica la misma semántica que el adaptador SQL
// (igualdad para WorkerNameExact, subcadena para WorkerName).
func TestList_RolWorker_NoVeFilasDeNombresParecidos(t *testing.T) {
	uc, distRepo, _, _ := newFixture()
	distRepo.applyFilter = true
	distRepo.rows = []*entity.Distribution{
		{ID: "d-1", WorkerName: "Ana"},
		{ID: "d-2", WorkerName: "Ana María"},
	}

	out, err := uc.List("empresa-1", entity.RoleWorker, "Ana", reports.Query{})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Ana", out.Items[0].WorkerName,
		"una Worker solo debe ver sus propias filas")
}

// Un token de Worker sin nombre no tiene alcance aplicable: se rechaza en vez
// de devolver el libro completo.
func TestList_RolWorker_SinNombre_Rechaza(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, err := uc.List("empresa-1", entity.RoleWorker, "  ", reports.Query{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestList_RolManager_RespetaFiltros(t *testing.T) {
	uc, distRepo, _, _ := newFixture()

	_, err := uc.List("empresa-1", entity.RoleManager, "Laura Gómez", reports.Query{
		WorkerName: "Pedro", ProductName: "Cemento", Limit: 10, Offset: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedro", distRepo.lastFilter.WorkerName)
	assert.Empty(t, distRepo.lastFilter.WorkerNameExact, "la búsqueda de un Manager sigue siendo por subcadena")
	assert.Equal(t, "Cemento", distRepo.lastFilter.ProductName)
	assert.Equal(t, 10, distRepo.lastFilter.Limit)
	assert.Equal(t, 20, distRepo.lastFilter.Offset)
}

func TestExport_XLSX(t *testing.T) {
	uc, distRepo, exporter, pdfGen := newFixture()

	data, contentType, filename, err := uc.Export(context.Background(), "empresa-1", entity.RoleAdmin, "Admin", reports.FormatXLSX, reports.Query{Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.Contains(t, filename, ".xlsx")
	assert.True(t, exporter.called)
	assert.False(t, pdfGen.called)
	assert.Equal(t, 0, distRepo.lastFilter.Limit, "la exportación no pagina")
}

func TestExport_PDF(t *testing.T) {
	uc, _, exporter, pdfGen := newFixture()

	data, contentType, filename, err := uc.Export(context.Background(), "empresa-1", entity.RoleAdmin, "Admin", reports.FormatPDF, reports.Query{})
	require.NoError(t, err)

	assert.Equal(t, []byte("pdf"), data)
	assert.Equal(t, "application/pdf", contentType)
	assert.Contains(t, filename, ".pdf")
	assert.True(t, pdfGen.called)
	assert.False(t, exporter.called)
}

func TestExport_FormatoInvalido(t *testing.T) {
	uc, _, _, _ := newFixture()

	_, _, _, err := uc.Export(context.Background(), "empresa-1", entity.RoleAdmin, "Admin", "csv", reports.Query{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
