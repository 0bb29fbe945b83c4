package bulkimport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/corttex/estoque-api/internal/domain/entity"
)

// conversor aplica o valor textual de uma coluna ao campo destino do SKU.
type conversor func(valor string, sku *entity.SKU) error

// conversores mapeia campo destino → conversão. Campo novo é uma entrada
// nova nesta tabela, não um switch espalhado pelo código.
var conversores = map[string]conversor{
	"id":            texto(func(s *entity.SKU, v string) { s.ID = v }),
	"nome":          texto(func(s *entity.SKU, v string) { s.Nome = v }),
	"descricao":     texto(func(s *entity.SKU, v string) { s.Descricao = v }),
	"familia":       texto(func(s *entity.SKU, v string) { s.Familia = v }),
	"cor":           texto(func(s *entity.SKU, v string) { s.Cor = v }),
	"tamanho":       texto(func(s *entity.SKU, v string) { s.Tamanho = v }),
	"categoria":     texto(func(s *entity.SKU, v string) { s.Categoria = v }),
	"unidade":       texto(func(s *entity.SKU, v string) { s.Unidade = v }),
	"precoVenda":    valorDecimal(func(s *entity.SKU, d decimal.Decimal) { s.PrecoVenda = d }),
	"custoMedio":    valorDecimal(func(s *entity.SKU, d decimal.Decimal) { s.CustoMedio = d }),
	"estoqueMinimo": inteiro(func(s *entity.SKU, n int) { s.EstoqueMinimo = n }),
	"estoqueMaximo": inteiro(func(s *entity.SKU, n int) { s.EstoqueMaximo = n }),
	"ativo":         booleano(func(s *entity.SKU, b bool) { s.Ativo = b }),
}

func texto(set func(*entity.SKU, string)) conversor {
	return func(valor string, sku *entity.SKU) error {
		set(sku, strings.TrimSpace(valor))
		return nil
	}
}

// valorDecimal aceita vírgula como separador decimal (formato legado).
func valorDecimal(set func(*entity.SKU, decimal.Decimal)) conversor {
	return func(valor string, sku *entity.SKU) error {
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(valor), ",", "."))
		if err != nil {
			return fmt.Errorf("valor numérico inválido %q", valor)
		}
		set(sku, d)
		return nil
	}
}

func inteiro(set func(*entity.SKU, int)) conversor {
	return func(valor string, sku *entity.SKU) error {
		n, err := strconv.Atoi(strings.TrimSpace(valor))
		if err != nil {
			return fmt.Errorf("valor inteiro inválido %q", valor)
		}
		set(sku, n)
		return nil
	}
}

// booleano reconhece as grafias aceitas no formato legado.
func booleano(set func(*entity.SKU, bool)) conversor {
	return func(valor string, sku *entity.SKU) error {
		switch strings.ToLower(strings.TrimSpace(valor)) {
		case "true", "1", "sim", "yes":
			set(sku, true)
		default:
			set(sku, false)
		}
		return nil
	}
}
