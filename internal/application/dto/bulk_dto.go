package dto

// Mapeamento associa uma coluna do arquivo tabular a um campo destino do SKU.
type Mapeamento struct {
	CsvColumn string `json:"csvColumn"`
	DbField   string `json:"dbField"`
	Required  bool   `json:"required"`
}

// BulkImportRequest body de POST /api/skus/bulk-import.
type BulkImportRequest struct {
	Data     []map[string]any `json:"data"`
	Mappings []Mapeamento     `json:"mappings"`
}

// BulkImportResponse resultado da importação em massa. Imported, Duplicates e
// Errors são contagens independentes; a operação só é considerada falha quando
// nada foi importado e houve pelo menos um erro.
type BulkImportResponse struct {
	Success        bool     `json:"success"`
	Imported       int      `json:"imported"`
	Errors         []string `json:"errors"`
	Duplicates     []string `json:"duplicates"`
	Message        string   `json:"message"`
	ProcessingTime int64    `json:"processingTime"` // milissegundos
}
