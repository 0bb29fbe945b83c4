package entity

import "time"

// Status de uma execução de ingestão.
const (
	StatusProcessando = "Processando"
	StatusConcluido   = "Concluido"
)

// ArquivoEstoqueProcessado é o ledger de execuções: uma linha de auditoria
// por arquivo processado. NomeArquivo é único e funciona como guarda de
// idempotência — o mesmo export legado nunca é contabilizado duas vezes.
// Um arquivo com linhas inválidas ainda termina Concluido; falha é reservada
// para erros fatais antes de qualquer linha ser processada.
type ArquivoEstoqueProcessado struct {
	ID                 string
	NomeArquivo        string
	Empresa            string
	TotalRegistros     int
	RegistrosValidos   int
	RegistrosInvalidos int
	Status             string
	Erros              []string // serializada como JSON no banco
	DataProcessamento  time.Time
	UpdatedAt          time.Time
}
