package casorepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

const casoColumns = `id, titulo, descricao, status, agente_id`

// CasoRepository implementa as operações de persistência de casos.
// A existência do agente referenciado é verificada pelo serviço, não aqui.
type CasoRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCasoRepository cria e retorna uma nova instância do Repositório de Casos.
func NewCasoRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *CasoRepository {
	return &CasoRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanCaso(row scanner) (domain.Caso, error) {
	var caso domain.Caso
	err := row.Scan(&caso.ID, &caso.Titulo, &caso.Descricao, &caso.Status, &caso.AgenteID)
	return caso, err
}

// GetAllCasos lista casos aplicando os filtros de status e agente_id em conjunto.
func (r *CasoRepository) GetAllCasos(ctx context.Context, filter domain.CasoFilter) ([]domain.Caso, error) {
	r.logger.Debug("Iniciando GetAllCasos no repositório.", map[string]interface{}{"status": string(filter.Status), "agente_id": filter.AgenteID})

	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.AgenteID != 0 {
		args = append(args, filter.AgenteID)
		conds = append(conds, fmt.Sprintf("agente_id = $%d", len(args)))
	}

	query := `SELECT ` + casoColumns + ` FROM casos`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	return r.list(ctx, "GetAllCasos", query, args...)
}

// SearchCasos busca o termo em titulo ou descricao, sem diferenciar maiúsculas.
func (r *CasoRepository) SearchCasos(ctx context.Context, q string) ([]domain.Caso, error) {
	r.logger.Debug("Iniciando SearchCasos no repositório.", map[string]interface{}{"q": q})

	query := `
        SELECT ` + casoColumns + `
        FROM casos
        WHERE titulo ILIKE $1 OR descricao ILIKE $1
        ORDER BY id`

	return r.list(ctx, "SearchCasos", query, "%"+q+"%")
}

func (r *CasoRepository) list(ctx context.Context, op string, query string, args ...interface{}) ([]domain.Caso, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error(fmt.Sprintf("Falha ao executar %s query.", op), err)
		return nil, apperror.NewDBError("Falha ao buscar casos", err)
	}
	defer rows.Close()

	casos := []domain.Caso{}
	for rows.Next() {
		caso, err := scanCaso(rows)
		if err != nil {
			r.logger.Error(fmt.Sprintf("Falha ao mapear caso na iteração de %s.", op), err)
			return nil, apperror.NewDBError("Falha ao mapear casos do DB", err)
		}
		casos = append(casos, caso)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de casos.", err)
		return nil, apperror.NewDBError("Erro após iteração de casos", err)
	}

	r.logger.Info(fmt.Sprintf("%s concluído com sucesso.", op), map[string]interface{}{"total_casos": len(casos)})
	return casos, nil
}

// GetCasoByID busca um caso pelo ID. Retorna nil quando não existe.
func (r *CasoRepository) GetCasoByID(ctx context.Context, id int) (*domain.Caso, error) {
	r.logger.Debug("Iniciando GetCasoByID no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	caso, err := scanCaso(r.DB.QueryRowContext(ctxTimeout, `SELECT `+casoColumns+` FROM casos WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Caso não encontrado.", map[string]interface{}{"id": id})
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar caso no DB.", err)
		return nil, apperror.NewDBError("Falha ao buscar caso", err)
	}

	return &caso, nil
}

// CreateCaso insere um novo caso; o id é gerado pelo banco.
func (r *CasoRepository) CreateCaso(ctx context.Context, caso domain.Caso) (domain.Caso, error) {
	r.logger.Debug("Iniciando CreateCaso no repositório.", map[string]interface{}{"titulo": caso.Titulo, "agente_id": caso.AgenteID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO casos (titulo, descricao, status, agente_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + casoColumns

	created, err := scanCaso(r.DB.QueryRowContext(ctxTimeout, query,
		caso.Titulo, caso.Descricao, caso.Status, caso.AgenteID,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir caso no DB.", err)
		return domain.Caso{}, apperror.NewDBError("Falha ao criar caso", err)
	}

	r.logger.Info("Caso criado com sucesso.", map[string]interface{}{"id": created.ID, "agente_id": created.AgenteID})
	return created, nil
}

// UpdateCaso substitui todos os campos de um caso. Retorna nil quando não existe.
func (r *CasoRepository) UpdateCaso(ctx context.Context, id int, caso domain.Caso) (*domain.Caso, error) {
	r.logger.Debug("Iniciando UpdateCaso no repositório.", map[string]interface{}{"id": id})

	query := `
        UPDATE casos
        SET titulo = $1, descricao = $2, status = $3, agente_id = $4
        WHERE id = $5
        RETURNING ` + casoColumns

	return r.updateRow(ctx, id, query, caso.Titulo, caso.Descricao, caso.Status, caso.AgenteID, id)
}

// PatchCaso atualiza apenas os campos informados. Retorna nil quando não existe.
func (r *CasoRepository) PatchCaso(ctx context.Context, id int, patch domain.CasoPatch) (*domain.Caso, error) {
	r.logger.Debug("Iniciando PatchCaso no repositório.", map[string]interface{}{"id": id})

	query := `
        UPDATE casos
        SET titulo = COALESCE($1, titulo),
            descricao = COALESCE($2, descricao),
            status = COALESCE($3::caso_status, status),
            agente_id = COALESCE($4::integer, agente_id)
        WHERE id = $5
        RETURNING ` + casoColumns

	return r.updateRow(ctx, id, query, patch.Titulo, patch.Descricao, patch.Status, patch.AgenteID, id)
}

func (r *CasoRepository) updateRow(ctx context.Context, id int, query string, args ...interface{}) (*domain.Caso, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	updated, err := scanCaso(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Caso não encontrado para atualização.", map[string]interface{}{"id": id})
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar caso no DB.", err)
		return nil, apperror.NewDBError("Falha ao atualizar caso", err)
	}

	r.logger.Info("Caso atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return &updated, nil
}

// DeleteCaso remove um caso. Retorna false quando não existe.
func (r *CasoRepository) DeleteCaso(ctx context.Context, id int) (bool, error) {
	r.logger.Debug("Iniciando DeleteCaso no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM casos WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar caso do DB.", err)
		return false, apperror.NewDBError("Falha ao deletar caso", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteCaso.", err)
		return false, apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if rowsAffected == 0 {
		r.logger.Info("Caso não encontrado para exclusão.", map[string]interface{}{"id": id})
		return false, nil
	}

	r.logger.Info("Caso deletado com sucesso.", map[string]interface{}{"id": id})
	return true, nil
}
