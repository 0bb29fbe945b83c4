package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodificarConteudo_UTF8PassaDireto(t *testing.T) {
	assert.Equal(t, "ALGODÃO 150,5", decodificarConteudo([]byte("ALGODÃO 150,5")))
}

func TestDecodificarConteudo_Latin1SempreDecodifica(t *testing.T) {
	// "ALGODÃO" em Latin-1: 0xC3 é Ã, inválido como UTF-8 seguido de 'O'.
	bruto := []byte{'A', 'L', 'G', 'O', 'D', 0xC3, 'O'}
	assert.Equal(t, "ALGODÃO", decodificarConteudo(bruto))
}

func TestDecodificarConteudo_QualquerByteEhLatin1Valido(t *testing.T) {
	bruto := make([]byte, 256)
	for i := range bruto {
		bruto[i] = byte(i)
	}
	conteudo := decodificarConteudo(bruto)
	assert.Len(t, []rune(conteudo), 256, "todo byte mapeia para exatamente um caractere")
}
