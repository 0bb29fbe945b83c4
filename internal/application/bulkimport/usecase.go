// Package bulkimport implementa a importação em massa de SKUs a partir de
// linhas tabulares com mapeamento de colunas fornecido pelo chamador.
package bulkimport

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
	"github.com/corttex/estoque-api/pkg/logger"
)

// Config parâmetros da importação em massa.
type Config struct {
	// TamanhoLote registros processados por lote.
	TamanhoLote int
	// PausaEntreLotes pausa artificial entre lotes (backpressure sobre o banco).
	PausaEntreLotes time.Duration
	// Timeout limite de parede para a operação completa.
	Timeout time.Duration
}

// ImportarSKUsUseCase importa SKUs linha a linha em lotes, validando campos
// obrigatórios, pulando duplicados (reportados à parte dos erros) e
// resolvendo as referências de família/tamanho/unidade de negócio por código
// ou nome — criando a referência ausente, nunca sobrescrevendo a existente.
type ImportarSKUsUseCase struct {
	skuRepo repository.SKURepository
	refRepo repository.ReferenciaRepository
	cfg     Config
	log     *logger.Logger
}

// NewImportarSKUsUseCase constrói o caso de uso.
func NewImportarSKUsUseCase(
	skuRepo repository.SKURepository,
	refRepo repository.ReferenciaRepository,
	cfg Config,
	log *logger.Logger,
) *ImportarSKUsUseCase {
	if cfg.TamanhoLote <= 0 {
		cfg.TamanhoLote = 25
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &ImportarSKUsUseCase{skuRepo: skuRepo, refRepo: refRepo, cfg: cfg, log: log}
}

// Executar processa as linhas em lotes de tamanho fixo com pausa entre lotes.
// Ao estourar o timeout devolve o resultado parcial coletado até ali junto
// com domain.ErrTimeout; o trabalho em andamento é descartado.
func (uc *ImportarSKUsUseCase) Executar(ctx context.Context, linhas []map[string]any, mapeamentos []dto.Mapeamento) (*dto.BulkImportResponse, error) {
	inicio := time.Now()

	if len(mapeamentos) == 0 {
		return nil, domain.ErrEntradaInvalida
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	res := &dto.BulkImportResponse{
		Success:    true,
		Errors:     []string{},
		Duplicates: []string{},
	}

	total := len(linhas)
	for inicioLote := 0; inicioLote < total; inicioLote += uc.cfg.TamanhoLote {
		if ctx.Err() != nil {
			return uc.finalizarTimeout(res, inicio), domain.ErrTimeout
		}

		fimLote := inicioLote + uc.cfg.TamanhoLote
		if fimLote > total {
			fimLote = total
		}
		for i := inicioLote; i < fimLote; i++ {
			// +2: a linha 1 do arquivo original é o cabeçalho.
			uc.processarLinha(linhas[i], mapeamentos, i+2, res)
		}

		if fimLote < total && uc.cfg.PausaEntreLotes > 0 {
			select {
			case <-ctx.Done():
				return uc.finalizarTimeout(res, inicio), domain.ErrTimeout
			case <-time.After(uc.cfg.PausaEntreLotes):
			}
		}
	}

	res.ProcessingTime = time.Since(inicio).Milliseconds()
	res.Message, res.Success = mensagemFinal(res)

	uc.log.Info().
		Int("importados", res.Imported).
		Int("duplicados", len(res.Duplicates)).
		Int("erros", len(res.Errors)).
		Int64("ms", res.ProcessingTime).
		Msg("importação em massa de SKUs concluída")

	return res, nil
}

func (uc *ImportarSKUsUseCase) processarLinha(linha map[string]any, mapeamentos []dto.Mapeamento, numero int, res *dto.BulkImportResponse) {
	// Campos obrigatórios primeiro: linha incompleta nem chega ao banco.
	for _, m := range mapeamentos {
		if m.Required && valorLinha(linha, m) == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("Linha %d: Campo obrigatório '%s' está vazio", numero, m.DbField))
			return
		}
	}

	// Duplicado por chave primária é reportado à parte dos erros: "já
	// importado" não é "dado ruim".
	if id := valorCampo(linha, mapeamentos, "id"); id != "" {
		existente, err := uc.skuRepo.BuscarPorID(id)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Linha %d: %v", numero, err))
			return
		}
		if existente != nil {
			res.Duplicates = append(res.Duplicates, fmt.Sprintf("Linha %d: SKU '%s' já existe", numero, id))
			return
		}
	}

	sku := &entity.SKU{
		Ativo:         true,
		OrigemCriacao: entity.OrigemUploadMassa,
		StatusRevisao: entity.RevisaoPendente,
	}

	for _, m := range mapeamentos {
		valor := valorLinha(linha, m)
		if valor == "" {
			continue
		}
		switch m.DbField {
		case "familiaId":
			uc.vincularReferencia(sku, "familia", valor, numero)
		case "tamanhoId":
			uc.vincularReferencia(sku, "tamanho", valor, numero)
		case "unegId":
			uc.vincularReferencia(sku, "uneg", valor, numero)
		default:
			conv, ok := conversores[m.DbField]
			if !ok {
				uc.log.Debug().Str("campo", m.DbField).Msg("campo destino sem conversor; ignorado")
				continue
			}
			if err := conv(valor, sku); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Linha %d: campo '%s': %v", numero, m.DbField, err))
				return
			}
		}
	}

	if sku.ID == "" {
		res.Errors = append(res.Errors, fmt.Sprintf("Linha %d: Campo obrigatório 'id' está vazio", numero))
		return
	}
	if sku.Unidade == "" {
		sku.Unidade = "UN"
	}

	if err := uc.skuRepo.Criar(sku); err != nil {
		if errors.Is(err, domain.ErrDuplicado) {
			res.Duplicates = append(res.Duplicates, fmt.Sprintf("Linha %d: SKU '%s' já existe", numero, sku.ID))
			return
		}
		res.Errors = append(res.Errors, fmt.Sprintf("Linha %d: %v", numero, err))
		return
	}
	res.Imported++
}

// vincularReferencia resolve família/tamanho/uneg por código ou nome e liga o
// ID ao SKU. Falha de resolução é decisão explícita de política: loga warning
// e a linha segue sem o vínculo, em vez de ser abortada.
func (uc *ImportarSKUsUseCase) vincularReferencia(sku *entity.SKU, tabela, valor string, numero int) {
	id, err := uc.resolverReferencia(tabela, valor)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("tabela", tabela).
			Str("valor", valor).
			Int("linha", numero).
			Msg("referência não resolvida; linha segue sem vínculo")
		return
	}
	switch tabela {
	case "familia":
		sku.FamiliaID = &id
	case "tamanho":
		sku.TamanhoID = &id
	case "uneg":
		sku.UnegID = &id
	}
}

// resolverReferencia busca por código ou nome; ausente, cria a linha de
// referência com descrição sintética. Em corrida com outra importação a
// constraint de unicidade decide e o perdedor rebusca.
func (uc *ImportarSKUsUseCase) resolverReferencia(tabela, valor string) (int64, error) {
	buscar, criar := uc.operacoesReferencia(tabela)

	id, achou, err := buscar(valor)
	if err != nil {
		return 0, err
	}
	if achou {
		return id, nil
	}

	id, err = criar(valor)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicado) {
			if id, achou, err2 := buscar(valor); err2 == nil && achou {
				return id, nil
			}
		}
		return 0, err
	}
	return id, nil
}

const descricaoReferenciaAutomatica = "Criado automaticamente durante importação em massa"

func (uc *ImportarSKUsUseCase) operacoesReferencia(tabela string) (func(string) (int64, bool, error), func(string) (int64, error)) {
	switch tabela {
	case "familia":
		return func(v string) (int64, bool, error) {
				f, err := uc.refRepo.BuscarFamilia(v)
				if err != nil || f == nil {
					return 0, false, err
				}
				return f.ID, true, nil
			}, func(v string) (int64, error) {
				f := &entity.Familia{Codigo: v, Nome: v, Descricao: descricaoReferenciaAutomatica}
				if err := uc.refRepo.CriarFamilia(f); err != nil {
					return 0, err
				}
				return f.ID, nil
			}
	case "tamanho":
		return func(v string) (int64, bool, error) {
				t, err := uc.refRepo.BuscarTamanho(v)
				if err != nil || t == nil {
					return 0, false, err
				}
				return t.ID, true, nil
			}, func(v string) (int64, error) {
				t := &entity.Tamanho{Codigo: v, Nome: v, Descricao: descricaoReferenciaAutomatica}
				if err := uc.refRepo.CriarTamanho(t); err != nil {
					return 0, err
				}
				return t.ID, nil
			}
	default:
		return func(v string) (int64, bool, error) {
				u, err := uc.refRepo.BuscarUneg(v)
				if err != nil || u == nil {
					return 0, false, err
				}
				return u.ID, true, nil
			}, func(v string) (int64, error) {
				u := &entity.Uneg{Codigo: v, Nome: v, Descricao: descricaoReferenciaAutomatica}
				if err := uc.refRepo.CriarUneg(u); err != nil {
					return 0, err
				}
				return u.ID, nil
			}
	}
}

func (uc *ImportarSKUsUseCase) finalizarTimeout(res *dto.BulkImportResponse, inicio time.Time) *dto.BulkImportResponse {
	res.Success = false
	res.ProcessingTime = time.Since(inicio).Milliseconds()
	res.Message = "Timeout: operação excedeu o tempo limite"
	return res
}

// valorLinha lê o valor mapeado de uma linha, aceitando a linha indexada
// tanto pela coluna de origem quanto pelo campo destino.
func valorLinha(linha map[string]any, m dto.Mapeamento) string {
	if v, ok := linha[m.CsvColumn]; ok && v != nil {
		return valorTexto(v)
	}
	if v, ok := linha[m.DbField]; ok && v != nil {
		return valorTexto(v)
	}
	return ""
}

// valorTexto normaliza um valor JSON para texto. Números JSON chegam como
// float64 e precisam de formato posicional: %v renderia 1000000 como "1e+06"
// e o conversor de inteiro rejeitaria o valor.
func valorTexto(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func valorCampo(linha map[string]any, mapeamentos []dto.Mapeamento, dbField string) string {
	for _, m := range mapeamentos {
		if m.DbField == dbField {
			return valorLinha(linha, m)
		}
	}
	return ""
}

func mensagemFinal(res *dto.BulkImportResponse) (string, bool) {
	segundos := res.ProcessingTime / 1000
	switch {
	case res.Imported > 0 && len(res.Errors) == 0:
		return fmt.Sprintf("%d SKUs importados com sucesso em %ds!", res.Imported, segundos), true
	case res.Imported > 0:
		return fmt.Sprintf("%d SKUs importados, %d erros encontrados (%ds)", res.Imported, len(res.Errors), segundos), true
	case len(res.Errors) > 0:
		return fmt.Sprintf("Falha na importação: %d erros encontrados", len(res.Errors)), false
	default:
		return "Nenhum SKU foi importado", false
	}
}
