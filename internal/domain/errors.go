package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado       = errors.New("recurso não encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrConflito            = errors.New("conflito com o estado atual")
	ErrArquivoNaoSuportado = errors.New("tipo de arquivo não suportado")
	ErrArquivoJaProcessado = errors.New("este arquivo já foi processado anteriormente")
	ErrTimeout             = errors.New("timeout: operação excedeu o tempo limite")
)
