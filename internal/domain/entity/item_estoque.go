package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemEstoque é um fato bruto de entrada de estoque: uma linha válida do
// relatório legado, imutável depois de gravada e de posse exclusiva da
// execução de ingestão que a criou.
type ItemEstoque struct {
	ID                string
	SKUID             string
	LocalizacaoCodigo string
	Codigo            string // código do produto na linha do relatório
	ApelidoFamilia    string
	Qualidade         string
	Qmm               string
	Cor               string
	Quantidade        decimal.Decimal
	DescricaoCor      string
	Tamanho           string
	TamanhoDetalhado  string
	EmbalagemVolume   string
	Unidade           string
	PesoLiquido       *decimal.Decimal
	PesoBruto         *decimal.Decimal
	Empresa           string
	ArquivoOrigem     string
	CreatedAt         time.Time
}
