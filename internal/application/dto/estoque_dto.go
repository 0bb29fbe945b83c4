package dto

import "time"

// ResultadoCargaResponse resposta de POST /api/estoque/carregar-base.
// Erros traz só os primeiros N erros; a lista completa fica no ledger.
type ResultadoCargaResponse struct {
	TotalRegistros     int      `json:"totalRegistros"`
	RegistrosValidos   int      `json:"registrosValidos"`
	RegistrosInvalidos int      `json:"registrosInvalidos"`
	SKUsCriados        int      `json:"skusCriados"`
	SKUsExistentes     int      `json:"skusExistentes"`
	Erros              []string `json:"erros"`
}

// ArquivoProcessadoDTO linha do ledger de execuções para listagem.
type ArquivoProcessadoDTO struct {
	ID                 string    `json:"id"`
	NomeArquivo        string    `json:"nomeArquivo"`
	Empresa            string    `json:"empresa"`
	TotalRegistros     int       `json:"totalRegistros"`
	RegistrosValidos   int       `json:"registrosValidos"`
	RegistrosInvalidos int       `json:"registrosInvalidos"`
	Status             string    `json:"status"`
	Erros              []string  `json:"erros,omitempty"`
	DataProcessamento  time.Time `json:"dataProcessamento"`
}

// EstatisticasArquivosDTO agregados do ledger.
type EstatisticasArquivosDTO struct {
	TotalArquivos  int `json:"totalArquivos"`
	TotalRegistros int `json:"totalRegistros"`
	TotalValidos   int `json:"totalValidos"`
	TotalInvalidos int `json:"totalInvalidos"`
}

// ListaArquivosResponse resposta de GET /api/estoque/arquivos-processados.
type ListaArquivosResponse struct {
	Arquivos     []ArquivoProcessadoDTO  `json:"arquivos"`
	Total        int                     `json:"total"`
	Estatisticas EstatisticasArquivosDTO `json:"estatisticas"`
}
