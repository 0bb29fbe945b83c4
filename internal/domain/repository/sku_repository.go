package repository

import (
	"time"

	"github.com/corttex/estoque-api/internal/domain/entity"
)

// ContagemRevisao total de SKUs por (origem de criação, status de revisão).
type ContagemRevisao struct {
	OrigemCriacao string
	StatusRevisao string
	Total         int
}

// SKURepository define o porto de persistência para SKU (DIP).
// A ingestão só usa CriarSeAusente: criar é permitido, sobrescrever não —
// um SKU curado manualmente nunca é degradado por uma carga automática.
type SKURepository interface {
	// CriarSeAusente insere o SKU se a chave ainda não existir e devolve
	// true quando a linha foi criada nesta chamada. Resolve corridas de
	// upsert concorrente via constraint de unicidade do banco.
	CriarSeAusente(sku *entity.SKU) (bool, error)
	Criar(sku *entity.SKU) error
	BuscarPorID(id string) (*entity.SKU, error)
	ListarPorRevisao(statusRevisao, origemCriacao string, limit, offset int) ([]*entity.SKU, int, error)
	ContarPorOrigemStatus() ([]ContagemRevisao, error)
	AtualizarRevisao(id, statusRevisao, revisadoPor, observacoes string, data time.Time) error
}
