package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

// RevisaoUseCase fluxo de revisão manual dos SKUs criados automaticamente
// pela ingestão e pela importação em massa.
type RevisaoUseCase struct {
	skuRepo repository.SKURepository
}

// NewRevisaoUseCase constrói o caso de uso.
func NewRevisaoUseCase(skuRepo repository.SKURepository) *RevisaoUseCase {
	return &RevisaoUseCase{skuRepo: skuRepo}
}

// Listar devolve SKUs filtrados por status de revisão e origem de criação,
// com as contagens por (origem, status).
func (uc *RevisaoUseCase) Listar(ctx context.Context, statusRevisao, origemCriacao string, limit, offset int) (*dto.ListaRevisaoResponse, error) {
	if statusRevisao == "" {
		statusRevisao = entity.RevisaoPendente
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	skus, total, err := uc.skuRepo.ListarPorRevisao(statusRevisao, origemCriacao, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar SKUs para revisão: %w", err)
	}

	contagens, err := uc.skuRepo.ContarPorOrigemStatus()
	if err != nil {
		return nil, fmt.Errorf("estatísticas de revisão: %w", err)
	}

	res := &dto.ListaRevisaoResponse{
		SKUs:         make([]dto.SKURevisaoDTO, 0, len(skus)),
		Total:        total,
		PaginaAtual:  offset/limit + 1,
		TotalPaginas: (total + limit - 1) / limit,
	}
	for _, s := range skus {
		res.SKUs = append(res.SKUs, dto.SKURevisaoDTO{
			ID:            s.ID,
			Nome:          s.Nome,
			Descricao:     s.Descricao,
			Familia:       s.Familia,
			Cor:           s.Cor,
			Tamanho:       s.Tamanho,
			Unidade:       s.Unidade,
			OrigemCriacao: s.OrigemCriacao,
			StatusRevisao: s.StatusRevisao,
			RevisadoPor:   s.RevisadoPor,
			DataRevisao:   s.DataRevisao,
			CreatedAt:     s.CreatedAt,
		})
	}
	for _, c := range contagens {
		res.Estatisticas = append(res.Estatisticas, dto.ContagemRevisaoDTO{
			OrigemCriacao: c.OrigemCriacao,
			StatusRevisao: c.StatusRevisao,
			Total:         c.Total,
		})
	}
	return res, nil
}

// Revisar marca um SKU como revisado ou rejeitado, com auditoria.
func (uc *RevisaoUseCase) Revisar(ctx context.Context, in dto.RevisarSKURequest) error {
	if in.SKUID == "" {
		return domain.ErrEntradaInvalida
	}
	status := in.StatusRevisao
	if status == "" {
		status = entity.RevisaoRevisado
	}
	if status != entity.RevisaoRevisado && status != entity.RevisaoRejeitado {
		return domain.ErrEntradaInvalida
	}

	sku, err := uc.skuRepo.BuscarPorID(in.SKUID)
	if err != nil {
		return fmt.Errorf("buscar SKU: %w", err)
	}
	if sku == nil {
		return domain.ErrNaoEncontrado
	}

	if err := uc.skuRepo.AtualizarRevisao(in.SKUID, status, in.RevisadoPor, in.ObservacoesRevisao, time.Now()); err != nil {
		return fmt.Errorf("atualizar revisão: %w", err)
	}
	return nil
}
