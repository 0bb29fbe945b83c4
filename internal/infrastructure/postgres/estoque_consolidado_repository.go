package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

var _ repository.EstoqueConsolidadoRepository = (*EstoqueConsolidadoRepo)(nil)

// EstoqueConsolidadoRepo implementação do porto EstoqueConsolidadoRepository sobre PostgreSQL.
type EstoqueConsolidadoRepo struct {
	q Querier
}

// NewEstoqueConsolidadoRepository constrói o adaptador do consolidado por SKU.
func NewEstoqueConsolidadoRepository(q Querier) *EstoqueConsolidadoRepo {
	return &EstoqueConsolidadoRepo{q: q}
}

// Incrementar soma a quantidade ao consolidado do SKU de forma atômica,
// criando a linha na primeira ocorrência. A soma acontece no banco, nunca
// como read-modify-write no cliente.
func (r *EstoqueConsolidadoRepo) Incrementar(skuID string, quantidade decimal.Decimal, unidade string) error {
	query := `
		INSERT INTO estoque_consolidado (sku_id, quantidade_total, quantidade_disponivel, unidade, updated_at)
		VALUES ($1, $2, $2, $3, now())
		ON CONFLICT (sku_id) DO UPDATE
		SET quantidade_total = estoque_consolidado.quantidade_total + EXCLUDED.quantidade_total,
			quantidade_disponivel = estoque_consolidado.quantidade_disponivel + EXCLUDED.quantidade_disponivel,
			unidade = EXCLUDED.unidade,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, skuID, quantidade, unidade)
	if err != nil {
		return fmt.Errorf("incrementar consolidado: %w", err)
	}
	return nil
}

// BuscarPorSKU obtém o consolidado de um SKU. Devolve (nil, nil) quando não existe.
func (r *EstoqueConsolidadoRepo) BuscarPorSKU(skuID string) (*entity.EstoqueConsolidado, error) {
	query := `
		SELECT sku_id, quantidade_total, quantidade_disponivel, unidade, updated_at
		FROM estoque_consolidado WHERE sku_id = $1`
	var e entity.EstoqueConsolidado
	err := r.q.QueryRow(context.Background(), query, skuID).Scan(
		&e.SKUID, &e.QuantidadeTotal, &e.QuantidadeDisponivel, &e.Unidade, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consolidado: %w", err)
	}
	return &e, nil
}
