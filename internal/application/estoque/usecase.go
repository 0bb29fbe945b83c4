package estoque

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/catalogo"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/flatfile"
	"github.com/corttex/estoque-api/internal/domain/repository"
	"github.com/corttex/estoque-api/pkg/logger"
)

// Config parâmetros do carregamento de base.
type Config struct {
	// ArquivosAceitos whitelist de nomes de arquivo legados (minúsculas).
	ArquivosAceitos []string
	// MaxErrosPersistidos limita a lista de erros coletada e gravada no ledger.
	MaxErrosPersistidos int
}

// CarregarBaseUseCase processa um arquivo de mapeamento de estoque de ponta a
// ponta: guarda de idempotência por nome de arquivo, extração de cabeçalho,
// parse linha a linha, registro de localizações, resolução de SKU e gravação
// transacional de item + consolidado por linha. Sucesso parcial é a norma:
// erro em uma linha nunca aborta o arquivo.
type CarregarBaseUseCase struct {
	txRunner    TxRunner
	arquivoRepo repository.ArquivoRepository
	locRepo     repository.LocalizacaoRepository
	cfg         Config
	log         *logger.Logger
}

// NewCarregarBaseUseCase constrói o caso de uso.
func NewCarregarBaseUseCase(
	txRunner TxRunner,
	arquivoRepo repository.ArquivoRepository,
	locRepo repository.LocalizacaoRepository,
	cfg Config,
	log *logger.Logger,
) *CarregarBaseUseCase {
	if cfg.MaxErrosPersistidos <= 0 {
		cfg.MaxErrosPersistidos = 50
	}
	return &CarregarBaseUseCase{
		txRunner:    txRunner,
		arquivoRepo: arquivoRepo,
		locRepo:     locRepo,
		cfg:         cfg,
		log:         log,
	}
}

// ResultadoCarga síntese de uma execução de ingestão.
// TotalRegistros = RegistrosValidos + RegistrosInvalidos; linhas de ruído
// (banner, separador, subtotal, vazias) não contam como registro.
type ResultadoCarga struct {
	TotalRegistros     int
	RegistrosValidos   int
	RegistrosInvalidos int
	SKUsCriados        int
	SKUsExistentes     int
	Erros              []string
}

type linhaNumerada struct {
	numero int
	linha  *flatfile.LinhaEstoque
}

// Executar processa o arquivo e devolve o resultado consolidado.
// Erros fatais (nome não suportado, arquivo já processado, falha de banco
// antes das linhas) abortam sem criar execução; erros por linha são
// acumulados e a execução termina Concluido mesmo assim.
func (uc *CarregarBaseUseCase) Executar(ctx context.Context, nomeArquivo, conteudo string) (*ResultadoCarga, error) {
	nome := strings.ToLower(strings.TrimSpace(nomeArquivo))
	if !uc.arquivoAceito(nome) {
		return nil, domain.ErrArquivoNaoSuportado
	}

	existente, err := uc.arquivoRepo.BuscarPorNome(nome)
	if err != nil {
		return nil, fmt.Errorf("consultar ledger de execuções: %w", err)
	}
	if existente != nil {
		return nil, domain.ErrArquivoJaProcessado
	}

	cab := flatfile.ExtrairCabecalho(conteudo)

	validas, erros, invalidos := uc.parsearLinhas(conteudo)

	execucao := &entity.ArquivoEstoqueProcessado{
		ID:          uuid.New().String(),
		NomeArquivo: nome,
		Empresa:     cab.Empresa,
		Status:      entity.StatusProcessando,
	}
	if err := uc.arquivoRepo.Criar(execucao); err != nil {
		// Corrida entre duas submissões do mesmo arquivo: a constraint de
		// unicidade do nome decide quem vence.
		if errors.Is(err, domain.ErrDuplicado) {
			return nil, domain.ErrArquivoJaProcessado
		}
		return nil, fmt.Errorf("criar execução de ingestão: %w", err)
	}

	uc.registrarLocalizacoes(cab, validas)

	resultado := &ResultadoCarga{}
	for _, ln := range validas {
		criado, err := uc.processarLinha(ctx, cab, nome, ln.linha)
		if err != nil {
			invalidos++
			if len(erros) < uc.cfg.MaxErrosPersistidos {
				erros = append(erros, fmt.Sprintf("Linha %d: %v", ln.numero, err))
			}
			continue
		}
		resultado.RegistrosValidos++
		if criado {
			resultado.SKUsCriados++
		} else {
			resultado.SKUsExistentes++
		}
	}

	resultado.RegistrosInvalidos = invalidos
	resultado.TotalRegistros = resultado.RegistrosValidos + invalidos
	resultado.Erros = erros

	if err := uc.arquivoRepo.Finalizar(
		execucao.ID,
		resultado.TotalRegistros,
		resultado.RegistrosValidos,
		resultado.RegistrosInvalidos,
		entity.StatusConcluido,
		erros,
	); err != nil {
		return nil, fmt.Errorf("finalizar execução de ingestão: %w", err)
	}

	uc.log.Info().
		Str("arquivo", nome).
		Str("empresa", cab.Empresa).
		Int("validos", resultado.RegistrosValidos).
		Int("invalidos", resultado.RegistrosInvalidos).
		Int("skus_criados", resultado.SKUsCriados).
		Msg("carga de estoque concluída")

	return resultado, nil
}

func (uc *CarregarBaseUseCase) arquivoAceito(nome string) bool {
	for _, aceito := range uc.cfg.ArquivosAceitos {
		if nome == strings.ToLower(aceito) {
			return true
		}
	}
	return false
}

// parsearLinhas classifica e fatia todas as linhas físicas do arquivo,
// preservando o número da linha original para as mensagens de erro.
// Devolve as linhas válidas, as mensagens de erro (limitadas) e a contagem
// de linhas inválidas (sem limite).
func (uc *CarregarBaseUseCase) parsearLinhas(conteudo string) ([]linhaNumerada, []string, int) {
	var validas []linhaNumerada
	var erros []string
	invalidos := 0

	for i, bruta := range strings.Split(conteudo, "\n") {
		bruta = strings.TrimRight(bruta, "\r")
		l, errLinha := flatfile.ParseLinha(bruta)
		switch {
		case l != nil:
			validas = append(validas, linhaNumerada{numero: i + 1, linha: l})
		case errLinha != nil:
			invalidos++
			if len(erros) < uc.cfg.MaxErrosPersistidos {
				erros = append(erros, formatarErroLinha(i+1, errLinha, bruta))
			}
		}
	}

	return validas, erros, invalidos
}

// registrarLocalizacoes faz upsert de cada código de localização distinto —
// uma vez por código, não por linha. Falha aqui não aborta o arquivo: as
// linhas da localização afetada falharão individualmente e serão reportadas.
func (uc *CarregarBaseUseCase) registrarLocalizacoes(cab flatfile.Cabecalho, validas []linhaNumerada) {
	vistos := make(map[string]struct{}, len(validas))
	for _, ln := range validas {
		codigo := ln.linha.Localizacao
		if _, ok := vistos[codigo]; ok {
			continue
		}
		vistos[codigo] = struct{}{}

		loc := &entity.Localizacao{
			Codigo:            codigo,
			Empresa:           cab.Empresa,
			Armazem:           cab.Armazem,
			CentroResponsavel: cab.CentroResponsavel,
		}
		if err := uc.locRepo.Upsert(loc); err != nil {
			uc.log.Warn().Err(err).
				Str("localizacao", codigo).
				Msg("falha ao registrar localização")
		}
	}
}

// processarLinha grava uma linha válida dentro de uma transação: resolve ou
// cria o SKU pela chave composta, insere o item bruto e incrementa o
// consolidado. Devolve se o SKU foi criado nesta linha.
func (uc *CarregarBaseUseCase) processarLinha(ctx context.Context, cab flatfile.Cabecalho, nomeArquivo string, l *flatfile.LinhaEstoque) (bool, error) {
	chave := catalogo.ChaveSKU(l.ApelidoFamilia, l.Cor, l.Tamanho)
	skuCriado := false

	err := uc.txRunner.Run(ctx, func(
		skuRepo repository.SKURepository,
		itemRepo repository.ItemEstoqueRepository,
		consolidadoRepo repository.EstoqueConsolidadoRepository,
	) error {
		// Criar é permitido, sobrescrever não: um SKU existente (inclusive
		// curado manualmente) é reutilizado como está.
		sku := &entity.SKU{
			ID:            chave,
			Nome:          catalogo.NomeSKU(l.ApelidoFamilia, l.Cor, l.Tamanho),
			Descricao:     "Criado automaticamente a partir do arquivo " + nomeArquivo,
			Familia:       l.ApelidoFamilia,
			Cor:           l.Cor,
			Tamanho:       l.Tamanho,
			Unidade:       l.Unidade,
			Ativo:         true,
			OrigemCriacao: entity.OrigemSistema,
			StatusRevisao: entity.RevisaoPendente,
		}
		criado, err := skuRepo.CriarSeAusente(sku)
		if err != nil {
			return fmt.Errorf("resolver SKU %s: %w", chave, err)
		}
		skuCriado = criado

		item := &entity.ItemEstoque{
			ID:                uuid.New().String(),
			SKUID:             chave,
			LocalizacaoCodigo: l.Localizacao,
			Codigo:            l.Codigo,
			ApelidoFamilia:    l.ApelidoFamilia,
			Qualidade:         l.Qualidade,
			Qmm:               l.Qmm,
			Cor:               l.Cor,
			Quantidade:        l.Quantidade,
			DescricaoCor:      l.DescricaoCor,
			Tamanho:           l.Tamanho,
			TamanhoDetalhado:  l.TamanhoDetalhado,
			EmbalagemVolume:   l.EmbalagemVolume,
			Unidade:           l.Unidade,
			PesoLiquido:       l.PesoLiquido,
			PesoBruto:         l.PesoBruto,
			Empresa:           cab.Empresa,
			ArquivoOrigem:     nomeArquivo,
		}
		if err := itemRepo.Criar(item); err != nil {
			return fmt.Errorf("gravar item de estoque: %w", err)
		}

		if err := consolidadoRepo.Incrementar(chave, l.Quantidade, l.Unidade); err != nil {
			return fmt.Errorf("consolidar estoque: %w", err)
		}
		return nil
	})

	return skuCriado, err
}

// formatarErroLinha monta a mensagem de erro com número da linha e trecho,
// distinguindo forma não reconhecida de registro reconhecido mas inválido.
func formatarErroLinha(numero int, e *flatfile.ErroLinha, bruta string) string {
	trecho := []rune(bruta)
	if len(trecho) > 50 {
		trecho = trecho[:50]
	}
	if e.Tipo == flatfile.ErroFormato {
		return fmt.Sprintf("Linha %d: Formato inválido - %s...", numero, string(trecho))
	}
	return fmt.Sprintf("Linha %d: Registro inválido (%s) - %s...", numero, e.Motivo, string(trecho))
}
