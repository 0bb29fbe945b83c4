package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstoqueConsolidado mantém a quantidade agregada em mãos por SKU, somando
// todas as localizações e execuções de ingestão. QuantidadeTotal é sempre
// igual à soma das quantidades dos ItemEstoque do SKU; o incremento é feito
// de forma atômica no banco, nunca por releitura.
type EstoqueConsolidado struct {
	SKUID                string
	QuantidadeTotal      decimal.Decimal
	QuantidadeDisponivel decimal.Decimal
	Unidade              string
	UpdatedAt            time.Time
}
