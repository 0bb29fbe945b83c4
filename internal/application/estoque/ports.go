package estoque

import (
	"context"

	"github.com/corttex/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que um item de estoque nunca
// é gravado sem seu SKU existir e que o incremento consolidado não se perde
// sob ingestão concorrente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		skuRepo repository.SKURepository,
		itemRepo repository.ItemEstoqueRepository,
		consolidadoRepo repository.EstoqueConsolidadoRepository,
	) error) error
}
