package dto

import "time"

// SKURevisaoDTO SKU na listagem do fluxo de revisão.
type SKURevisaoDTO struct {
	ID            string     `json:"id"`
	Nome          string     `json:"nome"`
	Descricao     string     `json:"descricao,omitempty"`
	Familia       string     `json:"familia,omitempty"`
	Cor           string     `json:"cor,omitempty"`
	Tamanho       string     `json:"tamanho,omitempty"`
	Unidade       string     `json:"unidade,omitempty"`
	OrigemCriacao string     `json:"origemCriacao"`
	StatusRevisao string     `json:"statusRevisao"`
	RevisadoPor   string     `json:"revisadoPor,omitempty"`
	DataRevisao   *time.Time `json:"dataRevisao,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ContagemRevisaoDTO total de SKUs por origem e status de revisão.
type ContagemRevisaoDTO struct {
	OrigemCriacao string `json:"origemCriacao"`
	StatusRevisao string `json:"statusRevisao"`
	Total         int    `json:"total"`
}

// ListaRevisaoResponse resposta de GET /api/skus/revisao.
type ListaRevisaoResponse struct {
	SKUs         []SKURevisaoDTO      `json:"skus"`
	Total        int                  `json:"total"`
	Estatisticas []ContagemRevisaoDTO `json:"estatisticas"`
	PaginaAtual  int                  `json:"paginaAtual"`
	TotalPaginas int                  `json:"totalPaginas"`
}

// RevisarSKURequest body de PATCH /api/skus/revisao.
type RevisarSKURequest struct {
	SKUID              string `json:"skuId"`
	StatusRevisao      string `json:"statusRevisao,omitempty"`
	ObservacoesRevisao string `json:"observacoesRevisao,omitempty"`
	RevisadoPor        string `json:"revisadoPor,omitempty"`
}
