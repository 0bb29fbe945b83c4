package usecase

import (
	"context"
	"fmt"

	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

// ArquivoUseCase consulta o ledger de execuções de ingestão.
type ArquivoUseCase struct {
	arquivoRepo repository.ArquivoRepository
}

// NewArquivoUseCase constrói o caso de uso.
func NewArquivoUseCase(arquivoRepo repository.ArquivoRepository) *ArquivoUseCase {
	return &ArquivoUseCase{arquivoRepo: arquivoRepo}
}

// Listar devolve a página pedida de execuções mais as estatísticas agregadas.
func (uc *ArquivoUseCase) Listar(ctx context.Context, limit, offset int) (*dto.ListaArquivosResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	arquivos, total, err := uc.arquivoRepo.Listar(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar execuções: %w", err)
	}

	stats, err := uc.arquivoRepo.Estatisticas()
	if err != nil {
		return nil, fmt.Errorf("estatísticas de execuções: %w", err)
	}

	res := &dto.ListaArquivosResponse{
		Arquivos: make([]dto.ArquivoProcessadoDTO, 0, len(arquivos)),
		Total:    total,
		Estatisticas: dto.EstatisticasArquivosDTO{
			TotalArquivos:  stats.TotalArquivos,
			TotalRegistros: stats.TotalRegistros,
			TotalValidos:   stats.TotalValidos,
			TotalInvalidos: stats.TotalInvalidos,
		},
	}
	for _, a := range arquivos {
		res.Arquivos = append(res.Arquivos, dto.ArquivoProcessadoDTO{
			ID:                 a.ID,
			NomeArquivo:        a.NomeArquivo,
			Empresa:            a.Empresa,
			TotalRegistros:     a.TotalRegistros,
			RegistrosValidos:   a.RegistrosValidos,
			RegistrosInvalidos: a.RegistrosInvalidos,
			Status:             a.Status,
			Erros:              a.Erros,
			DataProcessamento:  a.DataProcessamento,
		})
	}
	return res, nil
}
