package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/usecase"
	"github.com/yourcompany/distribucion-api/internal/domain"
)

// WorkerHandler maneja altas y listados de trabajadores.
type WorkerHandler struct {
	uc *usecase.WorkerUseCase
}

// NewWorkerHandler construye el handler de trabajadores.
func NewWorkerHandler(uc *usecase.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar trabajador
// @Tags         workers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkerRequest  true  "name, gender, mobile"
// @Success      201   {object}  dto.WorkerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/workers [post]
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	worker, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

// List godoc
// @Summary      Listar trabajadores de la empresa
// @Tags         workers
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200     {object}  dto.WorkerListResponse
// @Router       /api/workers [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
