package postgres

import (
	"context"
	"fmt"

	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

var _ repository.ItemEstoqueRepository = (*ItemEstoqueRepo)(nil)

// ItemEstoqueRepo implementação do porto ItemEstoqueRepository sobre PostgreSQL.
type ItemEstoqueRepo struct {
	q Querier
}

// NewItemEstoqueRepository constrói o adaptador de persistência dos itens brutos.
func NewItemEstoqueRepository(q Querier) *ItemEstoqueRepo {
	return &ItemEstoqueRepo{q: q}
}

// Criar persiste um item bruto de estoque exatamente como veio do arquivo.
func (r *ItemEstoqueRepo) Criar(item *entity.ItemEstoque) error {
	query := `
		INSERT INTO itens_estoque (id, sku_id, localizacao_codigo, codigo, apelido_familia,
			qualidade, qmm, cor, quantidade, descricao_cor, tamanho, tamanho_detalhado,
			embalagem_volume, unidade, peso_liquido, peso_bruto, empresa, arquivo_origem, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now())`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKUID, item.LocalizacaoCodigo, item.Codigo, item.ApelidoFamilia,
		item.Qualidade, item.Qmm, item.Cor, item.Quantidade, item.DescricaoCor,
		item.Tamanho, item.TamanhoDetalhado, item.EmbalagemVolume, item.Unidade,
		item.PesoLiquido, item.PesoBruto, item.Empresa, item.ArquivoOrigem,
	)
	if err != nil {
		return fmt.Errorf("insert item estoque: %w", err)
	}
	return nil
}
