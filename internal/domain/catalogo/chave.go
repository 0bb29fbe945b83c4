// Package catalogo concentra a derivação determinística de identidade de SKU
// a partir dos atributos compostos (família, cor, tamanho).
package catalogo

import (
	"regexp"
	"strings"
)

// Placeholders usados na chave quando cor ou tamanho estão ausentes.
const (
	SemCor     = "SEM_COR"
	SemTamanho = "SEM_TAMANHO"
)

var reEspacos = regexp.MustCompile(`\s+`)

// ChaveSKU deriva a chave composta estável de um SKU:
// UPPER(familia_cor_tamanho), espaços internos viram underscore e cor/tamanho
// ausentes recebem placeholder. Reingerir a mesma combinação — ainda que de
// outro arquivo, com caixa ou espaçamento diferentes — resolve sempre para a
// mesma chave.
func ChaveSKU(familia, cor, tamanho string) string {
	if cor = strings.TrimSpace(cor); cor == "" {
		cor = SemCor
	}
	if tamanho = strings.TrimSpace(tamanho); tamanho == "" {
		tamanho = SemTamanho
	}
	chave := strings.TrimSpace(familia) + "_" + cor + "_" + tamanho
	chave = reEspacos.ReplaceAllString(chave, "_")
	return strings.ToUpper(chave)
}

// NomeSKU compõe o nome de exibição de um SKU criado automaticamente:
// concatenação dos rótulos presentes, separados por espaço.
func NomeSKU(familia, cor, tamanho string) string {
	partes := make([]string, 0, 3)
	for _, p := range []string{familia, cor, tamanho} {
		if p = strings.TrimSpace(p); p != "" {
			partes = append(partes, p)
		}
	}
	return strings.Join(partes, " ")
}
