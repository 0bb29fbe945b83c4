// Package flatfile implementa o parsing do relatório legado de mapeamento de
// estoque: classificação defensiva de linhas (banner/separador/subtotal vs
// dados) e fatiamento por posição fixa de caracteres.
package flatfile

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CampoPos intervalo de caracteres [Inicio, Fim) de um campo na linha do
// relatório. Fim negativo significa "até o final da linha".
type CampoPos struct {
	Inicio int
	Fim    int
}

// Offsets é o contrato com o formato fixo do relatório legado. Deriva de
// formato se corrige aqui, em um único lugar.
var Offsets = struct {
	Localizacao      CampoPos
	Codigo           CampoPos
	ApelidoFamilia   CampoPos
	QualQmmCor       CampoPos
	Quantidade       CampoPos
	DescricaoCor     CampoPos
	Tamanho          CampoPos
	TamanhoDetalhado CampoPos
	EmbalagemVolume  CampoPos
	Unidade          CampoPos
	PesoLiquido      CampoPos
	PesoBruto        CampoPos
}{
	Localizacao:      CampoPos{0, 12},
	Codigo:           CampoPos{12, 23},
	ApelidoFamilia:   CampoPos{23, 50},
	QualQmmCor:       CampoPos{50, 65},
	Quantidade:       CampoPos{65, 80},
	DescricaoCor:     CampoPos{80, 95},
	Tamanho:          CampoPos{95, 105},
	TamanhoDetalhado: CampoPos{105, 115},
	EmbalagemVolume:  CampoPos{115, 135},
	Unidade:          CampoPos{135, 140},
	PesoLiquido:      CampoPos{140, 155},
	PesoBruto:        CampoPos{155, -1},
}

// marcadoresRuido identifica linhas de banner, cabeçalho de colunas,
// separadores, subtotais e metadados do cabeçalho do relatório. As linhas que
// o extrator de cabeçalho lê (ARMAZEM, CENTRO RESPONS.) também são ruído para
// o parser de dados.
var marcadoresRuido = []string{
	"MAPEAMENTO DO ESTOQUE",
	"PERIODO CHECKIN",
	"LOCALIZAC.",
	"-------",
	"TOTAL FAMILIA",
	"TOTAL DO LOCAL",
	"ARMAZEM :",
	"CENTRO RESPONS.",
}

// EhRuido informa se a linha é ruído do relatório (descartada sem erro).
func EhRuido(linha string) bool {
	if strings.TrimSpace(linha) == "" {
		return true
	}
	for _, marcador := range marcadoresRuido {
		if strings.Contains(linha, marcador) {
			return true
		}
	}
	for banner := range bannersEmpresa {
		if strings.Contains(linha, banner) {
			return true
		}
	}
	return false
}

// Tipos de rejeição de linha. A distinção entre "forma não reconhecida" e
// "reconhecida mas inválida" é preservada na lista de erros para que o
// operador diagnostique mudanças de formato.
type TipoErro string

const (
	ErroFormato   TipoErro = "formato"   // a linha não tem a forma esperada
	ErroValidacao TipoErro = "validacao" // campos fatiados, valores inválidos
)

// ErroLinha descreve por que uma linha não-ruído foi rejeitada.
type ErroLinha struct {
	Tipo   TipoErro
	Motivo string
}

func (e *ErroLinha) Error() string {
	return string(e.Tipo) + ": " + e.Motivo
}

// LinhaEstoque linha de dados validada do relatório.
type LinhaEstoque struct {
	Localizacao      string
	Codigo           string
	ApelidoFamilia   string
	Qualidade        string
	Qmm              string
	Cor              string
	Quantidade       decimal.Decimal
	DescricaoCor     string
	Tamanho          string
	TamanhoDetalhado string
	EmbalagemVolume  string
	Unidade          string
	PesoLiquido      *decimal.Decimal
	PesoBruto        *decimal.Decimal
}

// ParseLinha classifica e fatia uma linha física do relatório.
// Devolve (nil, nil) para linhas de ruído, (nil, erro) para linhas não-ruído
// rejeitadas e a linha tipada quando válida. O parsing é determinístico: o
// mesmo texto produz sempre os mesmos valores de campo.
func ParseLinha(linha string) (*LinhaEstoque, *ErroLinha) {
	if EhRuido(linha) {
		return nil, nil
	}

	// Os offsets são posições de caractere, não de byte: o relatório chega em
	// Latin-1 e é decodificado para UTF-8, onde um acento vira dois bytes e
	// deslocaria todos os campos seguintes.
	runes := []rune(linha)

	// Linhas de dados válidas alcançam pelo menos o campo de unidade.
	if len(runes) <= Offsets.Unidade.Inicio {
		return nil, &ErroLinha{Tipo: ErroFormato, Motivo: "linha mais curta que o formato esperado"}
	}

	l := &LinhaEstoque{
		Localizacao:      campo(runes, Offsets.Localizacao),
		Codigo:           campo(runes, Offsets.Codigo),
		ApelidoFamilia:   campo(runes, Offsets.ApelidoFamilia),
		DescricaoCor:     campo(runes, Offsets.DescricaoCor),
		Tamanho:          campo(runes, Offsets.Tamanho),
		TamanhoDetalhado: campo(runes, Offsets.TamanhoDetalhado),
		EmbalagemVolume:  campo(runes, Offsets.EmbalagemVolume),
		Unidade:          campo(runes, Offsets.Unidade),
	}

	// Campo combinado QUAL QMM COR, separado por espaços em até três tokens.
	partes := strings.Fields(campo(runes, Offsets.QualQmmCor))
	if len(partes) > 0 {
		l.Qualidade = partes[0]
	}
	if len(partes) > 1 {
		l.Qmm = partes[1]
	}
	if len(partes) > 2 {
		l.Cor = strings.Join(partes[2:], " ")
	}

	switch {
	case l.Localizacao == "":
		return nil, &ErroLinha{Tipo: ErroValidacao, Motivo: "localização vazia"}
	case l.Codigo == "":
		return nil, &ErroLinha{Tipo: ErroValidacao, Motivo: "código do produto vazio"}
	case l.Unidade == "":
		return nil, &ErroLinha{Tipo: ErroValidacao, Motivo: "unidade vazia"}
	}

	qtd, err := parseDecimal(campo(runes, Offsets.Quantidade))
	if err != nil {
		return nil, &ErroLinha{Tipo: ErroValidacao, Motivo: "quantidade ausente ou inválida"}
	}
	if !qtd.GreaterThan(decimal.Zero) {
		return nil, &ErroLinha{Tipo: ErroValidacao, Motivo: "quantidade deve ser maior que zero"}
	}
	l.Quantidade = qtd

	// Pesos são opcionais; valor ilegível é tratado como ausente.
	if p, err := parseDecimal(campo(runes, Offsets.PesoLiquido)); err == nil {
		l.PesoLiquido = &p
	}
	if p, err := parseDecimal(campo(runes, Offsets.PesoBruto)); err == nil {
		l.PesoBruto = &p
	}

	return l, nil
}

// campo fatia o intervalo de caracteres e devolve o valor sem espaços nas
// pontas. Tolerante a linhas curtas: intervalo fora da linha devolve vazio.
func campo(linha []rune, pos CampoPos) string {
	if pos.Inicio >= len(linha) {
		return ""
	}
	fim := pos.Fim
	if fim < 0 || fim > len(linha) {
		fim = len(linha)
	}
	return strings.TrimSpace(string(linha[pos.Inicio:fim]))
}

// parseDecimal normaliza vírgula decimal do relatório (150,5 -> 150.5).
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}
