package http

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/application/estoque"
	"github.com/corttex/estoque-api/internal/application/usecase"
	"github.com/corttex/estoque-api/internal/domain"
)

// EstoqueHandler trata as requisições HTTP da ingestão de estoque.
type EstoqueHandler struct {
	carregarBase     *estoque.CarregarBaseUseCase
	arquivoUC        *usecase.ArquivoUseCase
	maxErrosResposta int
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(carregarBase *estoque.CarregarBaseUseCase, arquivoUC *usecase.ArquivoUseCase, maxErrosResposta int) *EstoqueHandler {
	if maxErrosResposta <= 0 {
		maxErrosResposta = 10
	}
	return &EstoqueHandler{carregarBase: carregarBase, arquivoUC: arquivoUC, maxErrosResposta: maxErrosResposta}
}

// CarregarBase godoc
// @Summary      Carregar arquivo de mapeamento de estoque
// @Tags         estoque
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo legado (tecido01.txt, fatex01.txt, confec01.txt, estsc01.txt)"
// @Success      200   {object}  dto.ResultadoCargaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estoque/carregar-base [post]
func (h *EstoqueHandler) CarregarBase(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ARQUIVO_AUSENTE", Message: "campo 'file' é obrigatório"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ARQUIVO_INVALIDO", Message: "não foi possível abrir o arquivo enviado"})
	}
	defer f.Close()

	bruto, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ARQUIVO_INVALIDO", Message: "não foi possível ler o arquivo enviado"})
	}

	resultado, err := h.carregarBase.Executar(c.Context(), fileHeader.Filename, decodificarConteudo(bruto))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrArquivoNaoSuportado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ARQUIVO_NAO_SUPORTADO", Message: "nome de arquivo não reconhecido"})
		case errors.Is(err, domain.ErrArquivoJaProcessado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ARQUIVO_JA_PROCESSADO", Message: "este arquivo já foi processado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	erros := resultado.Erros
	if len(erros) > h.maxErrosResposta {
		erros = erros[:h.maxErrosResposta]
	}
	return c.JSON(dto.ResultadoCargaResponse{
		TotalRegistros:     resultado.TotalRegistros,
		RegistrosValidos:   resultado.RegistrosValidos,
		RegistrosInvalidos: resultado.RegistrosInvalidos,
		SKUsCriados:        resultado.SKUsCriados,
		SKUsExistentes:     resultado.SKUsExistentes,
		Erros:              erros,
	})
}

// ListarArquivos godoc
// @Summary      Listar execuções de ingestão
// @Tags         estoque
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(10)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ListaArquivosResponse
// @Router       /api/estoque/arquivos-processados [get]
func (h *EstoqueHandler) ListarArquivos(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	if limit > 100 {
		limit = 100
	}
	out, err := h.arquivoUC.Listar(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// decodificarConteudo aceita UTF-8 diretamente; caso contrário decodifica como
// Latin-1, o encoding dos arquivos exportados pelo sistema legado. O fallback é
// total: todo byte é um caractere Latin-1 válido, então a decodificação nunca
// falha.
func decodificarConteudo(bruto []byte) string {
	if utf8.Valid(bruto) {
		return string(bruto)
	}
	decodificado, _ := charmap.ISO8859_1.NewDecoder().Bytes(bruto)
	return string(decodificado)
}
