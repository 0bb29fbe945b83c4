package repository

import "github.com/corttex/estoque-api/internal/domain/entity"

// LocalizacaoRepository define o porto de persistência para o cadastro de
// localizações. Upsert por código único; em conflito os campos de empresa,
// armazém e centro responsável assumem os valores mais recentes.
type LocalizacaoRepository interface {
	Upsert(loc *entity.Localizacao) error
	BuscarPorCodigo(codigo string) (*entity.Localizacao, error)
}
