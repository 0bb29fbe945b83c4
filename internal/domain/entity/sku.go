package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origem de criação de um SKU.
const (
	OrigemSistema     = "sistema"      // criado automaticamente pelo carregamento de base
	OrigemUploadMassa = "upload_massa" // criado via importação em massa (CSV mapeado)
	OrigemIndividual  = "individual"   // cadastro manual
)

// Status do fluxo de revisão de SKUs criados automaticamente.
const (
	RevisaoPendente  = "pendente_revisao"
	RevisaoRevisado  = "revisado"
	RevisaoRejeitado = "rejeitado"
)

// SKU representa uma variante de produto do catálogo, identificada pela chave
// composta determinística FAMILIA_COR_TAMANHO (ver catalogo.ChaveSKU).
// SKUs criados pelo sistema nascem com StatusRevisao pendente_revisao e só
// saem desse estado pelo fluxo de revisão manual; a ingestão nunca sobrescreve
// atributos de um SKU existente.
type SKU struct {
	ID            string // chave composta, ex.: ALGODAO_AZUL_M
	Nome          string
	Descricao     string
	Familia       string
	Cor           string
	Tamanho       string
	Categoria     string
	Unidade       string
	PrecoVenda    decimal.Decimal
	CustoMedio    decimal.Decimal
	EstoqueMinimo int
	EstoqueMaximo int
	Ativo         bool

	OrigemCriacao string
	StatusRevisao string

	// Auditoria do fluxo de revisão.
	RevisadoPor        string
	DataRevisao        *time.Time
	ObservacoesRevisao string

	// Referências resolvidas na importação em massa (nil = não resolvida).
	FamiliaID *int64
	TamanhoID *int64
	UnegID    *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
