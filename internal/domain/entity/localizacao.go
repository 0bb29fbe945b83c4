package entity

import "time"

// Localizacao registro do cadastro de localizações de armazém, criado na
// primeira vez que o código aparece em um arquivo de estoque e atualizado
// (last-write-wins) nas aparições seguintes.
type Localizacao struct {
	Codigo            string // único, ex.: 1.01.A.001
	Empresa           string // CORTTEX, FATEX ou DESCONHECIDA
	Armazem           string // número do armazém extraído do cabeçalho (vazio = ausente)
	CentroResponsavel string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
