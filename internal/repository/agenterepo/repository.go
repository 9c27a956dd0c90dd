package agenterepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

const agenteColumns = `id, nome, "dataDeIncorporacao", cargo`

// AgenteRepository implementa as operações de persistência de agentes.
// Ausência de registro é sinalizada com nil/false, nunca com erro de domínio.
type AgenteRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAgenteRepository cria e retorna uma nova instância do Repositório de Agentes.
func NewAgenteRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AgenteRepository {
	return &AgenteRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanAgente lê uma linha e normaliza a data para YYYY-MM-DD.
func scanAgente(row scanner) (domain.Agente, error) {
	var (
		agente domain.Agente
		data   time.Time
	)
	if err := row.Scan(&agente.ID, &agente.Nome, &data, &agente.Cargo); err != nil {
		return domain.Agente{}, err
	}
	agente.DataDeIncorporacao = data.Format(domain.DateLayout)
	return agente, nil
}

// GetAllAgentes lista agentes, filtrando por cargo (substring, sem diferenciar
// maiúsculas) e ordenando pela data de incorporação quando solicitado.
func (r *AgenteRepository) GetAllAgentes(ctx context.Context, filter domain.AgenteFilter) ([]domain.Agente, error) {
	r.logger.Debug("Iniciando GetAllAgentes no repositório.", map[string]interface{}{"cargo": filter.Cargo, "sort": string(filter.Sort)})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + agenteColumns + ` FROM agentes`
	var args []interface{}

	if filter.Cargo != "" {
		args = append(args, "%"+filter.Cargo+"%")
		query += ` WHERE cargo ILIKE $1`
	}

	switch filter.Sort {
	case domain.SortDataAsc:
		query += ` ORDER BY "dataDeIncorporacao" ASC, id ASC`
	case domain.SortDataDesc:
		query += ` ORDER BY "dataDeIncorporacao" DESC, id ASC`
	default:
		query += ` ORDER BY id`
	}

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao executar GetAllAgentes query.", err)
		return nil, apperror.NewDBError("Falha ao buscar agentes", err)
	}
	defer rows.Close()

	agentes := []domain.Agente{}
	for rows.Next() {
		agente, err := scanAgente(rows)
		if err != nil {
			r.logger.Error("Falha ao mapear agente na iteração de GetAllAgentes.", err)
			return nil, apperror.NewDBError("Falha ao mapear agentes do DB", err)
		}
		agentes = append(agentes, agente)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de agentes.", err)
		return nil, apperror.NewDBError("Erro após iteração de agentes", err)
	}

	r.logger.Info("GetAllAgentes concluído com sucesso.", map[string]interface{}{"total_agentes": len(agentes)})
	return agentes, nil
}

// GetAgenteByID busca um agente pelo ID. Retorna nil quando não existe.
func (r *AgenteRepository) GetAgenteByID(ctx context.Context, id int) (*domain.Agente, error) {
	r.logger.Debug("Iniciando GetAgenteByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + agenteColumns + ` FROM agentes WHERE id = $1`

	agente, err := scanAgente(r.DB.QueryRowContext(ctxTimeout, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Agente não encontrado.", map[string]interface{}{"id": id})
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar agente no DB.", err)
		return nil, apperror.NewDBError("Falha ao buscar agente", err)
	}

	return &agente, nil
}

// CreateAgente insere um novo agente; o id é gerado pelo banco.
func (r *AgenteRepository) CreateAgente(ctx context.Context, agente domain.Agente) (domain.Agente, error) {
	r.logger.Debug("Iniciando CreateAgente no repositório.", map[string]interface{}{"nome": agente.Nome})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO agentes (nome, "dataDeIncorporacao", cargo)
        VALUES ($1, $2, $3)
        RETURNING ` + agenteColumns

	created, err := scanAgente(r.DB.QueryRowContext(ctxTimeout, query,
		agente.Nome, agente.DataDeIncorporacao, agente.Cargo,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir agente no DB.", err)
		return domain.Agente{}, apperror.NewDBError("Falha ao criar agente", err)
	}

	r.logger.Info("Agente criado com sucesso.", map[string]interface{}{"id": created.ID, "nome": created.Nome})
	return created, nil
}

// UpdateAgente substitui todos os campos de um agente. Retorna nil quando não existe.
func (r *AgenteRepository) UpdateAgente(ctx context.Context, id int, agente domain.Agente) (*domain.Agente, error) {
	r.logger.Debug("Iniciando UpdateAgente no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE agentes
        SET nome = $1, "dataDeIncorporacao" = $2, cargo = $3
        WHERE id = $4
        RETURNING ` + agenteColumns

	return r.updateRow(ctxTimeout, id, query, agente.Nome, agente.DataDeIncorporacao, agente.Cargo, id)
}

// PatchAgente atualiza apenas os campos informados. Retorna nil quando não existe.
func (r *AgenteRepository) PatchAgente(ctx context.Context, id int, patch domain.AgentePatch) (*domain.Agente, error) {
	r.logger.Debug("Iniciando PatchAgente no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        UPDATE agentes
        SET nome = COALESCE($1, nome),
            "dataDeIncorporacao" = COALESCE($2::date, "dataDeIncorporacao"),
            cargo = COALESCE($3, cargo)
        WHERE id = $4
        RETURNING ` + agenteColumns

	return r.updateRow(ctxTimeout, id, query, patch.Nome, patch.DataDeIncorporacao, patch.Cargo, id)
}

func (r *AgenteRepository) updateRow(ctx context.Context, id int, query string, args ...interface{}) (*domain.Agente, error) {
	updated, err := scanAgente(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Agente não encontrado para atualização.", map[string]interface{}{"id": id})
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar agente no DB.", err)
		return nil, apperror.NewDBError("Falha ao atualizar agente", err)
	}

	r.logger.Info("Agente atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return &updated, nil
}

// DeleteAgente remove um agente; os casos vinculados são removidos em cascata
// pela chave estrangeira. Retorna false quando o agente não existe.
func (r *AgenteRepository) DeleteAgente(ctx context.Context, id int) (bool, error) {
	r.logger.Debug("Iniciando DeleteAgente no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM agentes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar agente do DB.", err)
		return false, apperror.NewDBError("Falha ao deletar agente", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteAgente.", err)
		return false, apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if rowsAffected == 0 {
		r.logger.Info("Agente não encontrado para exclusão.", map[string]interface{}{"id": id})
		return false, nil
	}

	r.logger.Info("Agente deletado com sucesso.", map[string]interface{}{"id": id})
	return true, nil
}
