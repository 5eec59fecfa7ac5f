package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/distribution"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/domain"
)

// DistributionHandler maneja el registro de entregas y la consulta del libro.
type DistributionHandler struct {
	distributeUC *distribution.DistributeUseCase
	reportUC     *reports.ReportUseCase
}

// NewDistributionHandler construye el handler de distribuciones.
func NewDistributionHandler(distributeUC *distribution.DistributeUseCase, reportUC *reports.ReportUseCase) *DistributionHandler {
	return &DistributionHandler{distributeUC: distributeUC, reportUC: reportUC}
}

// Create godoc
// @Summary      Registrar un lote de entrega a un trabajador
// @Description  Valida el stock de todas las líneas; si alguna no alcanza, el
// @Description  lote entero se rechaza sin efecto parcial.
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistributionRequest  true  "workerId + items"
// @Success      201   {array}   dto.DistributionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/distributions [post]
func (h *DistributionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.distributeUC.DistributeFromRequest(c.Context(), GetCompanyID(c), GetUserName(c), in)
	if err != nil {
		var stockErr *domain.InsufficientStockError
		if errors.As(err, &stockErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: stockErr.Error()})
		}
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WORKER_NOT_FOUND", Message: "el trabajador no existe en esta empresa"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "algún producto del lote no existe en esta empresa"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "workerId y al menos una línea con quantity > 0 son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List godoc
// @Summary      Listar el libro de distribuciones
// @Tags         distributions
// @Produce      json
// @Param        range    query  string  false  "all | today | week | month"
// @Param        worker   query  string  false  "filtro por nombre de trabajador (subcadena)"
// @Param        product  query  string  false  "filtro por nombre de producto (subcadena)"
// @Param        limit    query  int     false  "máx. resultados"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200      {object}  dto.DistributionListResponse
// @Router       /api/distributions [get]
func (h *DistributionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	q := reports.Query{
		Range:       c.Query("range"),
		WorkerName:  c.Query("worker"),
		ProductName: c.Query("product"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	out, err := h.reportUC.List(GetCompanyID(c), GetRole(c), GetUserName(c), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "range debe ser all, today, week o month"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "el token no identifica al trabajador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
