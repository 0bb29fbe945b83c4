package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/corttex/estoque-api/internal/application/bulkimport"
	"github.com/corttex/estoque-api/internal/application/estoque"
	"github.com/corttex/estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CarregarBase     *estoque.CarregarBaseUseCase
	ArquivoUC        *usecase.ArquivoUseCase
	ImportarSKUs     *bulkimport.ImportarSKUsUseCase
	RevisaoUC        *usecase.RevisaoUseCase
	MaxErrosResposta int
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Estoque: ingestão dos arquivos legados e ledger de execuções
	estoqueGroup := api.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.CarregarBase, deps.ArquivoUC, deps.MaxErrosResposta)
	estoqueGroup.Post("/carregar-base", estoqueHandler.CarregarBase)
	estoqueGroup.Get("/arquivos-processados", estoqueHandler.ListarArquivos)

	// SKUs: importação em massa e fluxo de revisão
	skus := api.Group("/skus")
	bulkHandler := NewBulkHandler(deps.ImportarSKUs)
	skus.Post("/bulk-import", bulkHandler.Importar)

	revisaoHandler := NewRevisaoHandler(deps.RevisaoUC)
	skus.Get("/revisao", revisaoHandler.Listar)
	skus.Patch("/revisao", revisaoHandler.Revisar)
}
