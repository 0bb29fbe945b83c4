package bulkimport_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corttex/estoque-api/internal/application/bulkimport"
	"github.com/corttex/estoque-api/internal/application/dto"
	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
	"github.com/corttex/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeSKURepo struct {
	skus map[string]*entity.SKU
}

func newFakeSKURepo() *fakeSKURepo {
	return &fakeSKURepo{skus: map[string]*entity.SKU{}}
}

func (f *fakeSKURepo) CriarSeAusente(sku *entity.SKU) (bool, error) {
	if _, ok := f.skus[sku.ID]; ok {
		return false, nil
	}
	copia := *sku
	f.skus[sku.ID] = &copia
	return true, nil
}

func (f *fakeSKURepo) Criar(sku *entity.SKU) error {
	if _, ok := f.skus[sku.ID]; ok {
		return domain.ErrDuplicado
	}
	copia := *sku
	f.skus[sku.ID] = &copia
	return nil
}

func (f *fakeSKURepo) BuscarPorID(id string) (*entity.SKU, error) {
	sku, ok := f.skus[id]
	if !ok {
		return nil, nil
	}
	return sku, nil
}

func (f *fakeSKURepo) ListarPorRevisao(statusRevisao, origemCriacao string, limit, offset int) ([]*entity.SKU, int, error) {
	return nil, 0, nil
}

func (f *fakeSKURepo) ContarPorOrigemStatus() ([]repository.ContagemRevisao, error) {
	return nil, nil
}

func (f *fakeSKURepo) AtualizarRevisao(id, statusRevisao, revisadoPor, observacoes string, data time.Time) error {
	return nil
}

type fakeRefRepo struct {
	familias map[string]*entity.Familia
	tamanhos map[string]*entity.Tamanho
	unegs    map[string]*entity.Uneg
	proximo  int64
}

func newFakeRefRepo() *fakeRefRepo {
	return &fakeRefRepo{
		familias: map[string]*entity.Familia{},
		tamanhos: map[string]*entity.Tamanho{},
		unegs:    map[string]*entity.Uneg{},
	}
}

func (f *fakeRefRepo) BuscarFamilia(valor string) (*entity.Familia, error) {
	return f.familias[valor], nil
}

func (f *fakeRefRepo) CriarFamilia(fam *entity.Familia) error {
	if _, ok := f.familias[fam.Codigo]; ok {
		return domain.ErrDuplicado
	}
	f.proximo++
	fam.ID = f.proximo
	f.familias[fam.Codigo] = fam
	return nil
}

func (f *fakeRefRepo) BuscarTamanho(valor string) (*entity.Tamanho, error) {
	return f.tamanhos[valor], nil
}

func (f *fakeRefRepo) CriarTamanho(t *entity.Tamanho) error {
	if _, ok := f.tamanhos[t.Codigo]; ok {
		return domain.ErrDuplicado
	}
	f.proximo++
	t.ID = f.proximo
	f.tamanhos[t.Codigo] = t
	return nil
}

func (f *fakeRefRepo) BuscarUneg(valor string) (*entity.Uneg, error) {
	return f.unegs[valor], nil
}

func (f *fakeRefRepo) CriarUneg(u *entity.Uneg) error {
	if _, ok := f.unegs[u.Codigo]; ok {
		return domain.ErrDuplicado
	}
	f.proximo++
	u.ID = f.proximo
	f.unegs[u.Codigo] = u
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

func novoUseCase(skuRepo *fakeSKURepo, refRepo *fakeRefRepo, cfg bulkimport.Config) *bulkimport.ImportarSKUsUseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return bulkimport.NewImportarSKUsUseCase(skuRepo, refRepo, cfg, log)
}

func mapeamentosBasicos() []dto.Mapeamento {
	return []dto.Mapeamento{
		{CsvColumn: "sku", DbField: "id", Required: true},
		{CsvColumn: "nomeProduto", DbField: "nome"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Importação
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_CaminhoFeliz(t *testing.T) {
	skuRepo := newFakeSKURepo()
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	linhas := []map[string]any{
		{"sku": "TOALHA-01", "nomeProduto": "Toalha Banho"},
		{"sku": "LENCOL-01", "nomeProduto": "Lençol Casal"},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentosBasicos())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Duplicates)
	assert.Contains(t, res.Message, "2 SKUs importados com sucesso")

	sku := skuRepo.skus["TOALHA-01"]
	require.NotNil(t, sku)
	assert.Equal(t, "Toalha Banho", sku.Nome)
	assert.Equal(t, entity.OrigemUploadMassa, sku.OrigemCriacao)
	assert.Equal(t, entity.RevisaoPendente, sku.StatusRevisao)
	assert.Equal(t, "UN", sku.Unidade, "unidade ausente assume UN")
	assert.True(t, sku.Ativo)
}

func TestImportar_MapeamentosVazios(t *testing.T) {
	uc := novoUseCase(newFakeSKURepo(), newFakeRefRepo(), bulkimport.Config{})
	_, err := uc.Executar(context.Background(), []map[string]any{{"sku": "X"}}, nil)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestImportar_CampoObrigatorioVazio(t *testing.T) {
	skuRepo := newFakeSKURepo()
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	linhas := []map[string]any{
		{"sku": "", "nomeProduto": "Sem ID"},
		{"sku": "OK-01", "nomeProduto": "Com ID"},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentosBasicos())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported, "a linha inválida não impede as demais")
	require.Len(t, res.Errors, 1)
	// Linha 1 dos dados = linha 2 do arquivo original (cabeçalho na linha 1).
	assert.Contains(t, res.Errors[0], "Linha 2: Campo obrigatório 'id' está vazio")
}

func TestImportar_DuplicadosReportadosSeparadamente(t *testing.T) {
	skuRepo := newFakeSKURepo()
	skuRepo.skus["TOALHA-01"] = &entity.SKU{ID: "TOALHA-01", Nome: "Já existia"}
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	linhas := []map[string]any{
		{"sku": "TOALHA-01", "nomeProduto": "Nova Toalha"},
		{"sku": "LENCOL-01", "nomeProduto": "Lençol"},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentosBasicos())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Imported)
	assert.Empty(t, res.Errors, "duplicado não é erro de dado")
	require.Len(t, res.Duplicates, 1)
	assert.Contains(t, res.Duplicates[0], "SKU 'TOALHA-01' já existe")

	assert.Equal(t, "Já existia", skuRepo.skus["TOALHA-01"].Nome, "o SKU existente fica intacto")
}

func TestImportar_ConversoresDeCampos(t *testing.T) {
	skuRepo := newFakeSKURepo()
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	mapeamentos := []dto.Mapeamento{
		{CsvColumn: "sku", DbField: "id", Required: true},
		{CsvColumn: "preco", DbField: "precoVenda"},
		{CsvColumn: "minimo", DbField: "estoqueMinimo"},
		{CsvColumn: "ativo", DbField: "ativo"},
	}
	linhas := []map[string]any{
		{"sku": "TOALHA-01", "preco": "10,50", "minimo": "5", "ativo": "sim"},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentos)
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)

	sku := skuRepo.skus["TOALHA-01"]
	require.NotNil(t, sku)
	assert.True(t, sku.PrecoVenda.Equal(decimal.RequireFromString("10.5")), "vírgula decimal aceita")
	assert.Equal(t, 5, sku.EstoqueMinimo)
	assert.True(t, sku.Ativo, "'sim' é verdadeiro")
}

func TestImportar_ConversaoInvalidaRejeitaLinha(t *testing.T) {
	skuRepo := newFakeSKURepo()
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	mapeamentos := []dto.Mapeamento{
		{CsvColumn: "sku", DbField: "id", Required: true},
		{CsvColumn: "preco", DbField: "precoVenda"},
	}
	linhas := []map[string]any{
		{"sku": "TOALHA-01", "preco": "dez reais"},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentos)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "precoVenda")
	assert.Nil(t, skuRepo.skus["TOALHA-01"], "linha com conversão inválida não chega ao banco")
}

func TestImportar_NumeroJSONGrandeSemNotacaoCientifica(t *testing.T) {
	skuRepo := newFakeSKURepo()
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	mapeamentos := []dto.Mapeamento{
		{CsvColumn: "sku", DbField: "id", Required: true},
		{CsvColumn: "minimo", DbField: "estoqueMinimo"},
		{CsvColumn: "maximo", DbField: "estoqueMaximo"},
	}
	// Números JSON chegam como float64; 1000000 não pode virar "1e+06".
	linhas := []map[string]any{
		{"sku": "TOALHA-01", "minimo": 1000000.0, "maximo": 2000000.0},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentos)
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported, "erros: %v", res.Errors)

	sku := skuRepo.skus["TOALHA-01"]
	require.NotNil(t, sku)
	assert.Equal(t, 1000000, sku.EstoqueMinimo)
	assert.Equal(t, 2000000, sku.EstoqueMaximo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Referências
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_ReferenciaCriadaUmaVez(t *testing.T) {
	skuRepo := newFakeSKURepo()
	refRepo := newFakeRefRepo()
	uc := novoUseCase(skuRepo, refRepo, bulkimport.Config{})

	mapeamentos := []dto.Mapeamento{
		{CsvColumn: "sku", DbField: "id", Required: true},
		{CsvColumn: "familia", DbField: "familiaId"},
	}
	linhas := []map[string]any{
		{"sku": "TOALHA-01", "familia": "ALGODAO"},
		{"sku": "TOALHA-02", "familia": "ALGODAO"},
	}
	res, err := uc.Executar(context.Background(), linhas, mapeamentos)
	require.NoError(t, err)
	require.Equal(t, 2, res.Imported)

	require.Len(t, refRepo.familias, 1, "a mesma família não é criada duas vezes")
	fam := refRepo.familias["ALGODAO"]
	require.NotNil(t, fam)
	assert.Equal(t, "Criado automaticamente durante importação em massa", fam.Descricao)

	a := skuRepo.skus["TOALHA-01"]
	b := skuRepo.skus["TOALHA-02"]
	require.NotNil(t, a.FamiliaID)
	require.NotNil(t, b.FamiliaID)
	assert.Equal(t, *a.FamiliaID, *b.FamiliaID, "ambos os SKUs apontam para a mesma família")
}

// ──────────────────────────────────────────────────────────────────────────────
// Timeout
// ──────────────────────────────────────────────────────────────────────────────

func TestImportar_TimeoutDevolveResultadoParcial(t *testing.T) {
	skuRepo := newFakeSKURepo()
	uc := novoUseCase(skuRepo, newFakeRefRepo(), bulkimport.Config{})

	// Contexto já cancelado: o primeiro lote nem começa.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	linhas := []map[string]any{
		{"sku": "TOALHA-01", "nomeProduto": "Toalha"},
	}
	res, err := uc.Executar(ctx, linhas, mapeamentosBasicos())

	assert.ErrorIs(t, err, domain.ErrTimeout)
	require.NotNil(t, res, "o resultado parcial acompanha o erro de timeout")
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Timeout")
}
