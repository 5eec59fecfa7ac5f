// Package reports arma el digest de auditoría del libro de distribuciones:
// listados filtrados por rango/trabajador/producto y exportaciones XLSX/PDF.
package reports

import (
	"context"
	"strings"
	"time"

	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/domain"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
	"github.com/yourcompany/distribucion-api/internal/domain/repository"
)

// Rangos de fecha soportados por el filtro.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// Query filtros del reporte, tal como llegan por query string.
type Query struct {
	Range       string // all, today, week, month
	WorkerName  string
	ProductName string
	Limit       int
	Offset      int
}

// LedgerExporter genera el archivo de exportación a partir de las filas filtradas.
// XLSX lo implementa excel.Exporter; PDF, pdf.MarotoReportGenerator.
type LedgerExporter interface {
	ExportXLSX(companyName string, rows []*entity.Distribution) ([]byte, error)
}

// LedgerPDFGenerator genera la representación PDF del digest.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, companyName string, rows []*entity.Distribution) ([]byte, error)
}

// ReportUseCase listados y exportaciones del libro de distribuciones.
type ReportUseCase struct {
	distRepo    repository.DistributionRepository
	companyRepo repository.CompanyRepository
	exporter    LedgerExporter
	pdfGen      LedgerPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	distRepo repository.DistributionRepository,
	companyRepo repository.CompanyRepository,
	exporter LedgerExporter,
	pdfGen LedgerPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{distRepo: distRepo, companyRepo: companyRepo, exporter: exporter, pdfGen: pdfGen}
}

// List devuelve el libro filtrado. Si el rol del solicitante es Worker, el
// filtro de trabajador se fuerza a su propio nombre: un Worker solo ve sus
// propias entregas.
func (uc *ReportUseCase) List(companyID, callerRole, callerName string, q Query) (*dto.DistributionListResponse, error) {
	filter, err := uc.buildFilter(callerRole, callerName, q)
	if err != nil {
		return nil, err
	}
	list, err := uc.distRepo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DistributionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toDistributionResponse(d))
	}
	return &dto.DistributionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Formatos de exportación.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// Export genera el digest en el formato pedido y devuelve bytes + content type
// + nombre de archivo sugerido. Aplica los mismos filtros que List, sin paginar.
func (uc *ReportUseCase) Export(
	ctx context.Context,
	companyID, callerRole, callerName, format string,
	q Query,
) (data []byte, contentType, filename string, err error) {
	q.Limit = 0
	q.Offset = 0
	filter, err := uc.buildFilter(callerRole, callerName, q)
	if err != nil {
		return nil, "", "", err
	}
	rows, err := uc.distRepo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, "", "", err
	}

	companyName := ""
	if company, err := uc.companyRepo.GetByID(companyID); err == nil && company != nil {
		companyName = company.Name
	}

	timestamp := time.Now().Format("20060102_150405")
	switch format {
	case FormatXLSX:
		data, err = uc.exporter.ExportXLSX(companyName, rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"audit_digest_" + timestamp + ".xlsx", nil
	case FormatPDF:
		data, err = uc.pdfGen.GenerateLedgerPDF(ctx, companyName, rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, "application/pdf", "audit_digest_" + timestamp + ".pdf", nil
	default:
		return nil, "", "", domain.ErrInvalidInput
	}
}

func (uc *ReportUseCase) buildFilter(callerRole, callerName string, q Query) (repository.DistributionFilter, error) {
	filter := repository.DistributionFilter{
		WorkerName:  strings.TrimSpace(q.WorkerName),
		ProductName: strings.TrimSpace(q.ProductName),
		Limit:       q.Limit,
		Offset:      q.Offset,
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch q.Range {
	case "", RangeAll:
		// sin filtro de fecha
	case RangeToday:
		filter.From = &today
	case RangeWeek:
		from := today.AddDate(0, 0, -7)
		filter.From = &from
	case RangeMonth:
		from := today.AddDate(0, -1, 0)
		filter.From = &from
	default:
		return repository.DistributionFilter{}, domain.ErrInvalidInput
	}

	// Un Worker solo consulta sus propias entregas: igualdad estricta sobre
	// worker_name, nunca subcadena. Sin nombre en el token no hay alcance
	// que aplicar, así que se rechaza.
	if callerRole == entity.RoleWorker {
		name := strings.TrimSpace(callerName)
		if name == "" {
			return repository.DistributionFilter{}, domain.ErrUnauthorized
		}
		filter.WorkerName = ""
		filter.WorkerNameExact = name
	}
	return filter, nil
}

func toDistributionResponse(d *entity.Distribution) dto.DistributionResponse {
	return dto.DistributionResponse{
		ID:            d.ID,
		CompanyID:     d.CompanyID,
		WorkerID:      d.WorkerID,
		WorkerName:    d.WorkerName,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		PricePerUnit:  d.PricePerUnit,
		TotalAmount:   d.TotalAmount,
		DistributedBy: d.DistributedBy,
		DistributedAt: d.DistributedAt,
	}
}
