package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

var _ repository.ReferenciaRepository = (*ReferenciaRepo)(nil)

// ReferenciaRepo implementação do porto ReferenciaRepository sobre PostgreSQL.
// As três tabelas de referência (familias, tamanhos, unegs) têm o mesmo shape.
type ReferenciaRepo struct {
	q Querier
}

// NewReferenciaRepository constrói o adaptador das tabelas de referência.
func NewReferenciaRepository(q Querier) *ReferenciaRepo {
	return &ReferenciaRepo{q: q}
}

// BuscarFamilia busca por código exato ou nome (case-insensitive).
// Devolve (nil, nil) quando não existe.
func (r *ReferenciaRepo) BuscarFamilia(valor string) (*entity.Familia, error) {
	var f entity.Familia
	err := r.buscar("familias", valor, &f.ID, &f.Codigo, &f.Nome, &f.Descricao, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get familia: %w", err)
	}
	return &f, nil
}

// CriarFamilia insere a família e preenche o ID gerado.
func (r *ReferenciaRepo) CriarFamilia(f *entity.Familia) error {
	return r.criar("familias", f.Codigo, f.Nome, f.Descricao, &f.ID)
}

// BuscarTamanho busca por código exato ou nome (case-insensitive).
func (r *ReferenciaRepo) BuscarTamanho(valor string) (*entity.Tamanho, error) {
	var t entity.Tamanho
	err := r.buscar("tamanhos", valor, &t.ID, &t.Codigo, &t.Nome, &t.Descricao, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tamanho: %w", err)
	}
	return &t, nil
}

// CriarTamanho insere o tamanho e preenche o ID gerado.
func (r *ReferenciaRepo) CriarTamanho(t *entity.Tamanho) error {
	return r.criar("tamanhos", t.Codigo, t.Nome, t.Descricao, &t.ID)
}

// BuscarUneg busca por código exato ou nome (case-insensitive).
func (r *ReferenciaRepo) BuscarUneg(valor string) (*entity.Uneg, error) {
	var u entity.Uneg
	err := r.buscar("unegs", valor, &u.ID, &u.Codigo, &u.Nome, &u.Descricao, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uneg: %w", err)
	}
	return &u, nil
}

// CriarUneg insere a unidade de negócio e preenche o ID gerado.
func (r *ReferenciaRepo) CriarUneg(u *entity.Uneg) error {
	return r.criar("unegs", u.Codigo, u.Nome, u.Descricao, &u.ID)
}

func (r *ReferenciaRepo) buscar(tabela, valor string, destinos ...any) error {
	query := fmt.Sprintf(
		`SELECT id, codigo, nome, descricao, created_at FROM %s WHERE codigo = $1 OR nome ILIKE $1 LIMIT 1`,
		tabela,
	)
	return r.q.QueryRow(context.Background(), query, valor).Scan(destinos...)
}

func (r *ReferenciaRepo) criar(tabela, codigo, nome, descricao string, id *int64) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (codigo, nome, descricao, created_at) VALUES ($1, $2, $3, now()) RETURNING id`,
		tabela,
	)
	err := r.q.QueryRow(context.Background(), query, codigo, nome, descricao).Scan(id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert %s: %w", tabela, err)
	}
	return nil
}
