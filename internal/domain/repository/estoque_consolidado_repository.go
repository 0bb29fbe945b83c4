package repository

import (
	"github.com/shopspring/decimal"

	"github.com/corttex/estoque-api/internal/domain/entity"
)

// EstoqueConsolidadoRepository define o porto do agregado de quantidade em
// mãos por SKU. Incrementar é atômico no banco (UPDATE ... SET qtd = qtd + delta),
// nunca read-modify-write na aplicação, para suportar ingestões concorrentes.
type EstoqueConsolidadoRepository interface {
	Incrementar(skuID string, quantidade decimal.Decimal, unidade string) error
	BuscarPorSKU(skuID string) (*entity.EstoqueConsolidado, error)
}
