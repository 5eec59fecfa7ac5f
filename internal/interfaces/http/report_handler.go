package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/domain"
)

// ReportHandler maneja la exportación del digest de auditoría.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar el digest del libro de distribuciones
// @Tags         reports
// @Produce      application/octet-stream
// @Param        format   query  string  true   "xlsx | pdf"
// @Param        range    query  string  false  "all | today | week | month"
// @Param        worker   query  string  false  "filtro por nombre de trabajador"
// @Param        product  query  string  false  "filtro por nombre de producto"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	q := reports.Query{
		Range:       c.Query("range"),
		WorkerName:  c.Query("worker"),
		ProductName: c.Query("product"),
	}
	data, contentType, filename, err := h.uc.Export(
		c.Context(), GetCompanyID(c), GetRole(c), GetUserName(c), c.Query("format"), q,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser xlsx o pdf; range debe ser all, today, week o month"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "el token no identifica al trabajador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
