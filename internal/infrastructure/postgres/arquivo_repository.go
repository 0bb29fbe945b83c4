package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/corttex/estoque-api/internal/domain"
	"github.com/corttex/estoque-api/internal/domain/entity"
	"github.com/corttex/estoque-api/internal/domain/repository"
)

var _ repository.ArquivoRepository = (*ArquivoRepo)(nil)

// ArquivoRepo implementação do porto ArquivoRepository sobre PostgreSQL.
// A lista de erros é serializada como JSONB.
type ArquivoRepo struct {
	q Querier
}

// NewArquivoRepository constrói o adaptador do ledger de execuções.
func NewArquivoRepository(q Querier) *ArquivoRepo {
	return &ArquivoRepo{q: q}
}

// BuscarPorNome obtém uma execução pelo nome do arquivo. Devolve (nil, nil)
// quando o arquivo nunca foi processado.
func (r *ArquivoRepo) BuscarPorNome(nomeArquivo string) (*entity.ArquivoEstoqueProcessado, error) {
	query := `
		SELECT id, nome_arquivo, empresa, total_registros, registros_validos, registros_invalidos,
			status, erros, data_processamento, updated_at
		FROM arquivos_estoque_processados WHERE nome_arquivo = $1`
	arq, err := scanArquivo(r.q.QueryRow(context.Background(), query, nomeArquivo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get arquivo processado: %w", err)
	}
	return arq, nil
}

// Criar registra o início de uma execução. Nome já registrado devolve
// domain.ErrDuplicado (a constraint única é a guarda de idempotência).
func (r *ArquivoRepo) Criar(arquivo *entity.ArquivoEstoqueProcessado) error {
	erros, err := json.Marshal(arquivo.Erros)
	if err != nil {
		return fmt.Errorf("serializar erros: %w", err)
	}
	query := `
		INSERT INTO arquivos_estoque_processados
			(id, nome_arquivo, empresa, total_registros, registros_validos, registros_invalidos,
			 status, erros, data_processamento, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err = r.q.Exec(context.Background(), query,
		arquivo.ID, arquivo.NomeArquivo, arquivo.Empresa,
		arquivo.TotalRegistros, arquivo.RegistrosValidos, arquivo.RegistrosInvalidos,
		arquivo.Status, erros,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert arquivo processado: %w", err)
	}
	return nil
}

// Finalizar grava as contagens finais, o status e os erros acumulados.
func (r *ArquivoRepo) Finalizar(id string, total, validos, invalidos int, status string, erros []string) error {
	if erros == nil {
		erros = []string{}
	}
	serializados, err := json.Marshal(erros)
	if err != nil {
		return fmt.Errorf("serializar erros: %w", err)
	}
	query := `
		UPDATE arquivos_estoque_processados
		SET total_registros = $2, registros_validos = $3, registros_invalidos = $4,
			status = $5, erros = $6, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, total, validos, invalidos, status, serializados)
	if err != nil {
		return fmt.Errorf("finalizar arquivo processado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Listar devolve as execuções mais recentes primeiro, com o total geral.
func (r *ArquivoRepo) Listar(limit, offset int) ([]*entity.ArquivoEstoqueProcessado, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM arquivos_estoque_processados`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count arquivos processados: %w", err)
	}

	query := `
		SELECT id, nome_arquivo, empresa, total_registros, registros_validos, registros_invalidos,
			status, erros, data_processamento, updated_at
		FROM arquivos_estoque_processados
		ORDER BY data_processamento DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list arquivos processados: %w", err)
	}
	defer rows.Close()

	var arquivos []*entity.ArquivoEstoqueProcessado
	for rows.Next() {
		arq, err := scanArquivo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan arquivo processado: %w", err)
		}
		arquivos = append(arquivos, arq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate arquivos: %w", err)
	}
	return arquivos, total, nil
}

// Estatisticas agrega as contagens de todas as execuções.
func (r *ArquivoRepo) Estatisticas() (*repository.EstatisticasArquivos, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(total_registros), 0),
			COALESCE(SUM(registros_validos), 0),
			COALESCE(SUM(registros_invalidos), 0)
		FROM arquivos_estoque_processados`
	var e repository.EstatisticasArquivos
	err := r.q.QueryRow(context.Background(), query).Scan(
		&e.TotalArquivos, &e.TotalRegistros, &e.TotalValidos, &e.TotalInvalidos,
	)
	if err != nil {
		return nil, fmt.Errorf("estatisticas arquivos: %w", err)
	}
	return &e, nil
}

func scanArquivo(row pgx.Row) (*entity.ArquivoEstoqueProcessado, error) {
	var a entity.ArquivoEstoqueProcessado
	var erros []byte
	err := row.Scan(
		&a.ID, &a.NomeArquivo, &a.Empresa,
		&a.TotalRegistros, &a.RegistrosValidos, &a.RegistrosInvalidos,
		&a.Status, &erros, &a.DataProcessamento, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(erros) > 0 {
		if err := json.Unmarshal(erros, &a.Erros); err != nil {
			return nil, fmt.Errorf("desserializar erros: %w", err)
		}
	}
	return &a, nil
}
