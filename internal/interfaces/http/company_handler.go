package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/usecase"
	"github.com/yourcompany/distribucion-api/internal/domain"
)

// CompanyHandler maneja el setup y la consulta de la empresa.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Setup godoc
// @Summary      Crear la empresa (setup inicial)
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupCompanyRequest  true  "name"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/company/setup [post]
func (h *CompanyHandler) Setup(c *fiber.Ctx) error {
	var in dto.SetupCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	company, err := h.uc.Setup(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMPANY_EXISTS", Message: "ya existe una empresa con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// GetCurrent godoc
// @Summary      Empresa actual (pantalla de setup)
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) GetCurrent(c *fiber.Ctx) error {
	company, err := h.uc.GetCurrent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "aún no hay empresa registrada"})
	}
	return c.JSON(company)
}
