package repository

import "github.com/corttex/estoque-api/internal/domain/entity"

// ItemEstoqueRepository define o porto de persistência para os fatos brutos
// de estoque. Itens são imutáveis: só existe criação.
type ItemEstoqueRepository interface {
	Criar(item *entity.ItemEstoque) error
}
