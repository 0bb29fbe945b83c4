package flatfile

import (
	"regexp"
	"strings"
)

// EmpresaDesconhecida é o código devolvido quando nenhum banner de empresa
// conhecido aparece no arquivo.
const EmpresaDesconhecida = "DESCONHECIDA"

// bannersEmpresa associa a razão social impressa no banner do relatório ao
// código canônico de empresa.
var bannersEmpresa = map[string]string{
	"CORTTEX IND COM IMP E EXP LTDA": "CORTTEX",
	"FATEX INDL COML IMP E EXP LTDA": "FATEX",
}

var (
	reArmazem = regexp.MustCompile(`ARMAZEM :\s*(\d+)`)
	reCentro  = regexp.MustCompile(`CENTRO RESPONS\. :\s*\d+\s+(.+?)\s*\(`)
)

// Cabecalho metadados extraídos das linhas de banner do relatório.
// Campos vazios são estado válido e reportável, não erro — relatórios sem os
// marcadores seguem processáveis.
type Cabecalho struct {
	Empresa           string // CORTTEX, FATEX ou DESCONHECIDA
	Armazem           string // número após "ARMAZEM :" (vazio = ausente)
	CentroResponsavel string // texto entre "CENTRO RESPONS. :" e o parêntese seguinte
}

// ExtrairCabecalho varre o texto completo do arquivo em busca dos metadados
// de identificação. Sem efeitos colaterais; nunca falha.
func ExtrairCabecalho(conteudo string) Cabecalho {
	cab := Cabecalho{Empresa: EmpresaDesconhecida}

	for _, linha := range strings.Split(conteudo, "\n") {
		if cab.Empresa == EmpresaDesconhecida {
			for banner, codigo := range bannersEmpresa {
				if strings.Contains(linha, banner) {
					cab.Empresa = codigo
					break
				}
			}
		}
		if cab.Armazem == "" && strings.Contains(linha, "ARMAZEM :") {
			if m := reArmazem.FindStringSubmatch(linha); m != nil {
				cab.Armazem = m[1]
			}
		}
		if cab.CentroResponsavel == "" && strings.Contains(linha, "CENTRO RESPONS.") {
			if m := reCentro.FindStringSubmatch(linha); m != nil {
				cab.CentroResponsavel = m[1]
			}
		}
	}

	return cab
}
