package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementação do porto SKURepository sobre PostgreSQL (usável com pool ou tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository constrói o adaptador de persistência de SKUs. Passar pool ou tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

const colunasSKU = `id, nome, descricao, familia, cor, tamanho, categoria, unidade,
	preco_venda, custo_medio, estoque_minimo, estoque_maximo, ativo,
	origem_criacao, status_revisao, revisado_por, data_revisao, observacoes_revisao,
	familia_id, tamanho_id, uneg_id, created_at, updated_at`

// CriarSeAusente insere o SKU somente se a chave ainda não existir. Nunca
// sobrescreve: um SKU já cadastrado (inclusive curado manualmente) fica como
// está. Devolve true quando a linha foi criada nesta chamada.
func (r *SKURepo) CriarSeAusente(sku *entity.SKU) (bool, error) {
	query := `
		INSERT INTO skus (id, nome, descricao, familia, cor, tamanho, categoria, unidade,
			preco_venda, custo_medio, estoque_minimo, estoque_maximo, ativo,
			origem_criacao, status_revisao, familia_id, tamanho_id, uneg_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now(), now())
		ON CONFLICT (id) DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.Nome, sku.Descricao, sku.Familia, sku.Cor, sku.Tamanho, sku.Categoria, sku.Unidade,
		sku.PrecoVenda, sku.CustoMedio, sku.EstoqueMinimo, sku.EstoqueMaximo, sku.Ativo,
		sku.OrigemCriacao, sku.StatusRevisao, sku.FamiliaID, sku.TamanhoID, sku.UnegID,
	)
	if err != nil {
		return false, fmt.Errorf("insert sku se ausente: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// Criar persiste um novo SKU. Chave já existente devolve domain.ErrDuplicado.
func (r *SKURepo) Criar(sku *entity.SKU) error {
	query := `
		INSERT INTO skus (id, nome, descricao, familia, cor, tamanho, categoria, unidade,
			preco_venda, custo_medio, estoque_minimo, estoque_maximo, ativo,
			origem_criacao, status_revisao, familia_id, tamanho_id, uneg_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now(), now())`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.Nome, sku.Descricao, sku.Familia, sku.Cor, sku.Tamanho, sku.Categoria, sku.Unidade,
		sku.PrecoVenda, sku.CustoMedio, sku.EstoqueMinimo, sku.EstoqueMaximo, sku.Ativo,
		sku.OrigemCriacao, sku.StatusRevisao, sku.FamiliaID, sku.TamanhoID, sku.UnegID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// BuscarPorID obtém um SKU por ID. Devolve (nil, nil) quando não existe.
func (r *SKURepo) BuscarPorID(id string) (*entity.SKU, error) {
	query := `SELECT ` + colunasSKU + ` FROM skus WHERE id = $1`
	sku, err := r.scanSKU(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return sku, nil
}

// ListarPorRevisao lista SKUs por status de revisão, opcionalmente filtrados
// por origem de criação, com paginação e o total de linhas do filtro.
func (r *SKURepo) ListarPorRevisao(statusRevisao, origemCriacao string, limit, offset int) ([]*entity.SKU, int, error) {
	where := `WHERE status_revisao = $1`
	args := []any{statusRevisao}
	if origemCriacao != "" {
		where += ` AND origem_criacao = $2`
		args = append(args, origemCriacao)
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM skus `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count skus revisao: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM skus %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		colunasSKU, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list skus revisao: %w", err)
	}
	defer rows.Close()

	var skus []*entity.SKU
	for rows.Next() {
		sku, err := r.scanSKU(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sku: %w", err)
		}
		skus = append(skus, sku)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate skus: %w", err)
	}
	return skus, total, nil
}

// ContarPorOrigemStatus devolve a contagem de SKUs agrupada por
// (origem de criação, status de revisão).
func (r *SKURepo) ContarPorOrigemStatus() ([]repository.ContagemRevisao, error) {
	query := `
		SELECT origem_criacao, status_revisao, COUNT(*)
		FROM skus
		GROUP BY origem_criacao, status_revisao
		ORDER BY origem_criacao, status_revisao`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("count skus por origem/status: %w", err)
	}
	defer rows.Close()

	var contagens []repository.ContagemRevisao
	for rows.Next() {
		var c repository.ContagemRevisao
		if err := rows.Scan(&c.OrigemCriacao, &c.StatusRevisao, &c.Total); err != nil {
			return nil, fmt.Errorf("scan contagem: %w", err)
		}
		contagens = append(contagens, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contagens: %w", err)
	}
	return contagens, nil
}

// AtualizarRevisao grava o veredito de revisão com auditoria de quem e quando.
func (r *SKURepo) AtualizarRevisao(id, statusRevisao, revisadoPor, observacoes string, data time.Time) error {
	query := `
		UPDATE skus
		SET status_revisao = $2, revisado_por = $3, observacoes_revisao = $4, data_revisao = $5, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, statusRevisao, revisadoPor, observacoes, data)
	if err != nil {
		return fmt.Errorf("update revisao sku: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *SKURepo) scanSKU(row pgx.Row) (*entity.SKU, error) {
	var s entity.SKU
	err := row.Scan(
		&s.ID, &s.Nome, &s.Descricao, &s.Familia, &s.Cor, &s.Tamanho, &s.Categoria, &s.Unidade,
		&s.PrecoVenda, &s.CustoMedio, &s.EstoqueMinimo, &s.EstoqueMaximo, &s.Ativo,
		&s.OrigemCriacao, &s.StatusRevisao, &s.RevisadoPor, &s.DataRevisao, &s.ObservacoesRevisao,
		&s.FamiliaID, &s.TamanhoID, &s.UnegID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
