package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/application/usecase"
	"github.com/corttex/estoque-api/internal/domain"
)

// RevisaoHandler trata o fluxo de revisão dos SKUs criados automaticamente.
type RevisaoHandler struct {
	uc *usecase.RevisaoUseCase
}

// NewRevisaoHandler constrói o handler.
func NewRevisaoHandler(uc *usecase.RevisaoUseCase) *RevisaoHandler {
	return &RevisaoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar SKUs por status de revisão
// @Tags         skus
// @Produce      json
// @Param        status  query  string  false  "Status de revisão"  default(pendente_revisao)
// @Param        origem  query  string  false  "Origem de criação (sistema, upload_massa, individual)"
// @Param        limit   query  int     false  "Limite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ListaRevisaoResponse
// @Router       /api/skus/revisao [get]
func (h *RevisaoHandler) Listar(c *fiber.Ctx) error {
	status := c.Query("status")
	origem := c.Query("origem")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit > 200 {
		limit = 200
	}
	out, err := h.uc.Listar(c.Context(), status, origem, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Revisar godoc
// @Summary      Revisar um SKU
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RevisarSKURequest  true  "Veredito da revisão"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/skus/revisao [patch]
func (h *RevisaoHandler) Revisar(c *fiber.Ctx) error {
	var in dto.RevisarSKURequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	if err := h.uc.Revisar(c.Context(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "skuId e statusRevisao (revisado|rejeitado) são obrigatórios"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU não encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(fiber.Map{"success": true, "message": "SKU revisado com sucesso"})
}
