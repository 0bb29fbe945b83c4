package repository

import "github.com/corttex/estoque-api/internal/domain/entity"

// ReferenciaRepository define o porto das tabelas de referência usadas pela
// importação em massa (família, tamanho, unidade de negócio). A busca aceita
// código numérico ou nome; Buscar* devolve (nil, nil) quando não há match.
type ReferenciaRepository interface {
	BuscarFamilia(codigoOuNome string) (*entity.Familia, error)
	CriarFamilia(f *entity.Familia) error

	BuscarTamanho(codigoOuNome string) (*entity.Tamanho, error)
	CriarTamanho(t *entity.Tamanho) error

	BuscarUneg(codigoOuNome string) (*entity.Uneg, error)
	CriarUneg(u *entity.Uneg) error
}
