package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/corttex/estoque-api/internal/application/bulkimport"
	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/domain"
)

// BulkHandler trata a importação em massa de SKUs.
type BulkHandler struct {
	importar *bulkimport.ImportarSKUsUseCase
}

// NewBulkHandler constrói o handler.
func NewBulkHandler(importar *bulkimport.ImportarSKUsUseCase) *BulkHandler {
	return &BulkHandler{importar: importar}
}

// Importar godoc
// @Summary      Importar SKUs em massa
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkImportRequest  true  "Linhas e mapeamento de colunas"
// @Success      200   {object}  dto.BulkImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.BulkImportResponse
// @Router       /api/skus/bulk-import [post]
func (h *BulkHandler) Importar(c *fiber.Ctx) error {
	var in dto.BulkImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data não pode ser vazio"})
	}

	out, err := h.importar.Executar(c.Context(), in.Data, in.Mappings)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTimeout):
			// Resultado parcial: o que foi importado antes do estouro fica gravado.
			return c.Status(fiber.StatusRequestTimeout).JSON(out)
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mappings não pode ser vazio"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
