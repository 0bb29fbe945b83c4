package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

var _ repository.LocalizacaoRepository = (*LocalizacaoRepo)(nil)

// LocalizacaoRepo implementação do porto LocalizacaoRepository sobre PostgreSQL.
type LocalizacaoRepo struct {
	q Querier
}

// NewLocalizacaoRepository constrói o adaptador de persistência de localizações.
func NewLocalizacaoRepository(q Querier) *LocalizacaoRepo {
	return &LocalizacaoRepo{q: q}
}

// Upsert insere a localização ou atualiza os metadados do cabeçalho quando o
// código já existe. Arquivos sucessivos renovam empresa, armazém e centro.
func (r *LocalizacaoRepo) Upsert(loc *entity.Localizacao) error {
	query := `
		INSERT INTO localizacoes (codigo, empresa, armazem, centro_responsavel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (codigo) DO UPDATE
		SET empresa = EXCLUDED.empresa,
			armazem = EXCLUDED.armazem,
			centro_responsavel = EXCLUDED.centro_responsavel,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, loc.Codigo, loc.Empresa, loc.Armazem, loc.CentroResponsavel)
	if err != nil {
		return fmt.Errorf("upsert localizacao: %w", err)
	}
	return nil
}

// BuscarPorCodigo obtém uma localização pelo código. Devolve (nil, nil) quando não existe.
func (r *LocalizacaoRepo) BuscarPorCodigo(codigo string) (*entity.Localizacao, error) {
	query := `
		SELECT codigo, empresa, armazem, centro_responsavel, created_at, updated_at
		FROM localizacoes WHERE codigo = $1`
	var l entity.Localizacao
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&l.Codigo, &l.Empresa, &l.Armazem, &l.CentroResponsavel, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get localizacao: %w", err)
	}
	return &l, nil
}
