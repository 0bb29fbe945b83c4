package entity

import "time"

// Entidades de referência resolvidas pela importação em massa. Quando uma
// linha referencia um código que ainda não existe, a linha de referência é
// criada automaticamente com descrição sintética — nunca sobrescrita.

// Familia família de produto (código/nome).
type Familia struct {
	ID        int64
	Codigo    string
	Nome      string
	Descricao string
	CreatedAt time.Time
}

// Tamanho tamanho de produto (código/nome).
type Tamanho struct {
	ID        int64
	Codigo    string
	Nome      string
	Descricao string
	CreatedAt time.Time
}

// Uneg unidade de negócio (código/nome).
type Uneg struct {
	ID        int64
	Codigo    string
	Nome      string
	Descricao string
	CreatedAt time.Time
}
