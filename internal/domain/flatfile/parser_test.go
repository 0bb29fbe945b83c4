package flatfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corttex/estoque-api/internal/domain/flatfile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// linhaFixa monta uma linha do relatório posicionando cada valor no offset do
// formato fixo, sem depender de contagem manual de espaços. Posiciona por
// caractere, como o formato define.
func linhaFixa(valores map[*flatfile.CampoPos]string) string {
	buf := []rune(strings.Repeat(" ", 170))
	for pos, v := range valores {
		copy(buf[pos.Inicio:], []rune(v))
	}
	return strings.TrimRight(string(buf), " ")
}

// linhaValida devolve uma linha de dados completa e válida do relatório.
func linhaValida() string {
	o := &flatfile.Offsets
	return linhaFixa(map[*flatfile.CampoPos]string{
		&o.Localizacao:      "A01-B02",
		&o.Codigo:           "123456789",
		&o.ApelidoFamilia:   "TOALHA BANHO LUXO",
		&o.QualQmmCor:       "1A 02 AZUL",
		&o.Quantidade:       "150,5",
		&o.DescricaoCor:     "AZUL ROYAL",
		&o.Tamanho:          "G",
		&o.TamanhoDetalhado: "70X140",
		&o.EmbalagemVolume:  "CX 12",
		&o.Unidade:          "MT",
		&o.PesoLiquido:      "12,3",
		&o.PesoBruto:        "13,1",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Ruído
// ──────────────────────────────────────────────────────────────────────────────

func TestEhRuido_ReconheceMarcadoresDoRelatorio(t *testing.T) {
	ruidos := []string{
		"",
		"    ",
		"           MAPEAMENTO DO ESTOQUE",
		"PERIODO CHECKIN : 01/01 a 31/01",
		"LOCALIZAC.  CODIGO     APELIDO",
		"------------------------------------",
		"  TOTAL FAMILIA                 1.234,5",
		"  TOTAL DO LOCAL                9.876,5",
	}
	for _, linha := range ruidos {
		assert.True(t, flatfile.EhRuido(linha), "deve ser ruído: %q", linha)
	}

	assert.False(t, flatfile.EhRuido(linhaValida()), "linha de dados não é ruído")
}

func TestEhRuido_LinhasDeCabecalhoSaoRuido(t *testing.T) {
	// As linhas que o extrator de cabeçalho lê não são registros de dados.
	cabecalhos := []string{
		"      CORTTEX IND COM IMP E EXP LTDA",
		"      FATEX INDL COML IMP E EXP LTDA",
		"      ARMAZEM : 05   DEPOSITO CENTRAL",
		"      CENTRO RESPONS. : 123 CENTRO TEXTIL (SC)",
	}
	for _, linha := range cabecalhos {
		assert.True(t, flatfile.EhRuido(linha), "linha de cabeçalho deve ser ruído: %q", linha)

		l, errLinha := flatfile.ParseLinha(linha)
		assert.Nil(t, l)
		assert.Nil(t, errLinha, "linha de cabeçalho não conta como registro inválido: %q", linha)
	}
}

func TestParseLinha_RuidoNaoGeraErro(t *testing.T) {
	l, errLinha := flatfile.ParseLinha("------------------------------------")
	assert.Nil(t, l, "ruído não produz linha")
	assert.Nil(t, errLinha, "ruído não produz erro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fatiamento de campos
// ──────────────────────────────────────────────────────────────────────────────

func TestParseLinha_FatiaTodosOsCampos(t *testing.T) {
	l, errLinha := flatfile.ParseLinha(linhaValida())
	require.Nil(t, errLinha, "linha válida não deve produzir erro")
	require.NotNil(t, l)

	assert.Equal(t, "A01-B02", l.Localizacao)
	assert.Equal(t, "123456789", l.Codigo)
	assert.Equal(t, "TOALHA BANHO LUXO", l.ApelidoFamilia)
	assert.Equal(t, "1A", l.Qualidade)
	assert.Equal(t, "02", l.Qmm)
	assert.Equal(t, "AZUL", l.Cor)
	assert.Equal(t, "150.5", l.Quantidade.String(), "vírgula decimal deve virar ponto")
	assert.Equal(t, "AZUL ROYAL", l.DescricaoCor)
	assert.Equal(t, "G", l.Tamanho)
	assert.Equal(t, "70X140", l.TamanhoDetalhado)
	assert.Equal(t, "CX 12", l.EmbalagemVolume)
	assert.Equal(t, "MT", l.Unidade)
	require.NotNil(t, l.PesoLiquido)
	assert.Equal(t, "12.3", l.PesoLiquido.String())
	require.NotNil(t, l.PesoBruto)
	assert.Equal(t, "13.1", l.PesoBruto.String())
}

func TestParseLinha_OffsetsPorCaractereNaoPorByte(t *testing.T) {
	o := &flatfile.Offsets
	// Quantidade alinhada à direita do campo, como nos relatórios reais. O
	// acento na família ocupa dois bytes em UTF-8; fatiar por byte deslocaria
	// os campos seguintes e perderia a casa decimal.
	quantidadeNaDireita := &flatfile.CampoPos{Inicio: o.Quantidade.Fim - 5}
	linha := linhaFixa(map[*flatfile.CampoPos]string{
		&o.Localizacao:      "A01-B02",
		&o.Codigo:           "123456789",
		&o.ApelidoFamilia:   "ALGODÃO PENTEADO",
		quantidadeNaDireita: "150,5",
		&o.Unidade:          "MT",
	})

	l, errLinha := flatfile.ParseLinha(linha)
	require.Nil(t, errLinha)
	require.NotNil(t, l)
	assert.Equal(t, "ALGODÃO PENTEADO", l.ApelidoFamilia)
	assert.Equal(t, "150.5", l.Quantidade.String(), "o acento não pode deslocar a quantidade")
	assert.Equal(t, "MT", l.Unidade)
}

func TestParseLinha_Deterministico(t *testing.T) {
	linha := linhaValida()
	a, errA := flatfile.ParseLinha(linha)
	b, errB := flatfile.ParseLinha(linha)
	require.Nil(t, errA)
	require.Nil(t, errB)
	assert.Equal(t, a, b, "o mesmo texto deve produzir sempre os mesmos campos")
}

func TestParseLinha_CorComMaisDeUmToken(t *testing.T) {
	o := &flatfile.Offsets
	linha := linhaFixa(map[*flatfile.CampoPos]string{
		&o.Localizacao: "A01",
		&o.Codigo:      "123",
		&o.QualQmmCor:  "1A 02 AZUL BEBE",
		&o.Quantidade:  "10",
		&o.Unidade:     "UN",
	})
	l, errLinha := flatfile.ParseLinha(linha)
	require.Nil(t, errLinha)
	assert.Equal(t, "AZUL BEBE", l.Cor, "tokens excedentes pertencem à cor")
}

func TestParseLinha_PesosIlegiveisViramAusentes(t *testing.T) {
	o := &flatfile.Offsets
	linha := linhaFixa(map[*flatfile.CampoPos]string{
		&o.Localizacao: "A01",
		&o.Codigo:      "123",
		&o.Quantidade:  "10",
		&o.Unidade:     "UN",
		&o.PesoLiquido: "N/A",
	})
	l, errLinha := flatfile.ParseLinha(linha)
	require.Nil(t, errLinha, "peso ilegível não invalida a linha")
	assert.Nil(t, l.PesoLiquido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rejeições
// ──────────────────────────────────────────────────────────────────────────────

func TestParseLinha_CurtaDemaisEhErroDeFormato(t *testing.T) {
	l, errLinha := flatfile.ParseLinha("XYZ LINHA QUE NAO SEGUE O FORMATO")
	assert.Nil(t, l)
	require.NotNil(t, errLinha)
	assert.Equal(t, flatfile.ErroFormato, errLinha.Tipo)
}

func TestParseLinha_ErrosDeValidacao(t *testing.T) {
	o := &flatfile.Offsets
	base := map[*flatfile.CampoPos]string{
		&o.Localizacao: "A01",
		&o.Codigo:      "123",
		&o.Quantidade:  "10",
		&o.Unidade:     "UN",
	}

	casos := []struct {
		nome   string
		mudar  *flatfile.CampoPos
		valor  string
		motivo string
	}{
		{"localização vazia", &o.Localizacao, "", "localização"},
		{"código vazio", &o.Codigo, "", "código"},
		{"quantidade inválida", &o.Quantidade, "ABC", "quantidade"},
		{"quantidade zero", &o.Quantidade, "0", "quantidade"},
		{"quantidade negativa", &o.Quantidade, "-5", "quantidade"},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			valores := make(map[*flatfile.CampoPos]string, len(base))
			for k, v := range base {
				valores[k] = v
			}
			valores[caso.mudar] = caso.valor

			l, errLinha := flatfile.ParseLinha(linhaFixa(valores))
			assert.Nil(t, l)
			require.NotNil(t, errLinha)
			assert.Equal(t, flatfile.ErroValidacao, errLinha.Tipo)
			assert.Contains(t, errLinha.Motivo, caso.motivo)
		})
	}
}

func TestParseLinha_UnidadeVaziaEhValidacao(t *testing.T) {
	o := &flatfile.Offsets
	// Linha longa o bastante para alcançar o campo de unidade, mas sem valor nele.
	linha := linhaFixa(map[*flatfile.CampoPos]string{
		&o.Localizacao: "A01",
		&o.Codigo:      "123",
		&o.Quantidade:  "10",
		&o.PesoBruto:   "1,0",
	})
	l, errLinha := flatfile.ParseLinha(linha)
	assert.Nil(t, l)
	require.NotNil(t, errLinha)
	assert.Equal(t, flatfile.ErroValidacao, errLinha.Tipo)
	assert.Contains(t, errLinha.Motivo, "unidade")
}
