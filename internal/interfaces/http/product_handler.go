package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yourcompany/distribucion-api/internal/application/dto"
	"github.com/yourcompany/distribucion-api/internal/application/stockentry"
	"github.com/yourcompany/distribucion-api/internal/application/usecase"
	"github.com/yourcompany/distribucion-api/internal/domain"
)

// ProductHandler maneja el catálogo: consultas, entrada de stock y la
// importación desde Excel.
type ProductHandler struct {
	productUC    *usecase.ProductUseCase
	stockEntryUC *stockentry.StockEntryUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(productUC *usecase.ProductUseCase, stockEntryUC *stockentry.StockEntryUseCase) *ProductHandler {
	return &ProductHandler{productUC: productUC, stockEntryUC: stockEntryUC}
}

// List godoc
// @Summary      Listar productos de la empresa
// @Tags         products
// @Produce      json
// @Param        limit   query  int  false  "máx. resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	out, err := h.productUC.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.productUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if product == nil || product.CompanyID != GetCompanyID(c) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(product)
}

// Upsert godoc
// @Summary      Crear producto o sumar stock al existente
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertProductRequest  true  "producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.stockEntryUC.Upsert(c.Context(), GetCompanyID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productName es requerido y totalStock no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// BulkUpsert godoc
// @Summary      Carga masiva de productos (una sola transacción)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkUpsertProductsRequest  true  "items"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/bulk [post]
func (h *ProductHandler) BulkUpsert(c *fiber.Ctx) error {
	var in dto.BulkUpsertProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	applied, err := h.stockEntryUC.BulkUpsert(c.Context(), GetCompanyID(c), in.Items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items no puede estar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportResultResponse{RowsDetected: len(in.Items), RowsApplied: applied})
}

// Import godoc
// @Summary      Importar productos desde un archivo Excel (multipart, campo "file")
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo .xlsx"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo 'file' requerido (multipart)"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	out, err := h.stockEntryUC.ImportWorkbook(c.Context(), GetCompanyID(c), &buf)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_WORKBOOK", Message: "el archivo no contiene filas utilizables"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FAILED", Message: err.Error()})
	}
	return c.JSON(out)
}
