package catalogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corttex/estoque-api/internal/domain/catalogo"
)

func TestChaveSKU_ComposicaoCompleta(t *testing.T) {
	assert.Equal(t, "TOALHA_BANHO_AZUL_G", catalogo.ChaveSKU("TOALHA BANHO", "AZUL", "G"))
}

func TestChaveSKU_PlaceholdersParaAusentes(t *testing.T) {
	assert.Equal(t, "TOALHA_SEM_COR_SEM_TAMANHO", catalogo.ChaveSKU("TOALHA", "", ""))
	assert.Equal(t, "TOALHA_AZUL_SEM_TAMANHO", catalogo.ChaveSKU("TOALHA", "AZUL", "  "))
}

func TestChaveSKU_NormalizacaoEstavel(t *testing.T) {
	// Caixa e espaçamento diferentes resolvem para a mesma chave.
	a := catalogo.ChaveSKU("Toalha  Banho", "azul", "g")
	b := catalogo.ChaveSKU("TOALHA BANHO", " AZUL ", "G")
	assert.Equal(t, a, b, "a mesma combinação deve produzir sempre a mesma chave")
	assert.Equal(t, "TOALHA_BANHO_AZUL_G", a)
}

func TestNomeSKU_IgnoraPartesVazias(t *testing.T) {
	assert.Equal(t, "TOALHA AZUL G", catalogo.NomeSKU("TOALHA", "AZUL", "G"))
	assert.Equal(t, "TOALHA G", catalogo.NomeSKU("TOALHA", "", "G"))
	assert.Equal(t, "TOALHA", catalogo.NomeSKU(" TOALHA ", "", ""))
}
