package repository

import "github.com/corttex/estoque-api/internal/domain/entity"

// EstatisticasArquivos agregados do ledger de execuções.
type EstatisticasArquivos struct {
	TotalArquivos  int
	TotalRegistros int
	TotalValidos   int
	TotalInvalidos int
}

// ArquivoRepository define o porto do ledger de execuções de ingestão.
// O nome do arquivo é único; BuscarPorNome devolve (nil, nil) quando não há
// execução anterior.
type ArquivoRepository interface {
	BuscarPorNome(nomeArquivo string) (*entity.ArquivoEstoqueProcessado, error)
	Criar(arquivo *entity.ArquivoEstoqueProcessado) error
	// Finalizar grava contagens finais, lista de erros e status terminal.
	Finalizar(id string, total, validos, invalidos int, status string, erros []string) error
	Listar(limit, offset int) ([]*entity.ArquivoEstoqueProcessado, int, error)
	Estatisticas() (*EstatisticasArquivos, error)
}
