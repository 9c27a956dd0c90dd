package usuariorepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

// uniqueViolation é o código SQLSTATE do PostgreSQL para chave única violada.
const uniqueViolation pq.ErrorCode = "23505"


// UsuarioRepository implementa a persistência de usuários.
type UsuarioRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUsuarioRepository cria uma nova instância do UsuarioRepository, injetando o DB.
func NewUsuarioRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// CreateUsuario insere um usuário cuja senha já chega em hash.
func (r *UsuarioRepository) CreateUsuario(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	r.logger.Debug("Iniciando CreateUsuario no repositório.", map[string]interface{}{"email": usuario.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        INSERT INTO usuarios (nome, email, senha)
        VALUES ($1, $2, $3)
        RETURNING id, nome, email, senha`

	var created domain.Usuario
	err := r.DB.QueryRowContext(ctxTimeout, query, usuario.Nome, usuario.Email, usuario.SenhaHash).Scan(
		&created.ID, &created.Nome, &created.Email, &created.SenhaHash,
	)
	if err != nil {
		// Dois registros simultâneos com o mesmo e-mail passam pela checagem do
		// serviço; a constraint UNIQUE decide.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.logger.Info("E-mail duplicado rejeitado pela constraint.", map[string]interface{}{"email": usuario.Email})
			return domain.Usuario{}, apperror.NewConflictError(domain.MsgEmailDuplicado)
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.Usuario{}, apperror.NewDBError("Falha ao criar usuário", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": created.ID, "email": created.Email})
	return created, nil
}

// GetUsuarioByEmail busca um usuário pelo e-mail. Retorna nil quando não existe.
func (r *UsuarioRepository) GetUsuarioByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	r.logger.Debug("Iniciando GetUsuarioByEmail no repositório.", map[string]interface{}{"email_attempt": email})

	return r.findOne(ctx, `SELECT id, nome, email, senha FROM usuarios WHERE email = $1`, email)
}

// GetUsuarioByID busca um usuário pelo ID. Retorna nil quando não existe.
func (r *UsuarioRepository) GetUsuarioByID(ctx context.Context, id int) (*domain.Usuario, error) {
	r.logger.Debug("Iniciando GetUsuarioByID no repositório.", map[string]interface{}{"id": id})

	return r.findOne(ctx, `SELECT id, nome, email, senha FROM usuarios WHERE id = $1`, id)
}

func (r *UsuarioRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Usuario, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var usuario domain.Usuario
	err := r.DB.QueryRowContext(ctxTimeout, query, arg).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.SenhaHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Usuário não encontrado no DB.", map[string]interface{}{"key": arg})
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return nil, apperror.NewDBError("Falha ao buscar usuário", err)
	}

	return &usuario, nil
}

// DeleteUsuario remove um usuário. Retorna false quando não existe.
func (r *UsuarioRepository) DeleteUsuario(ctx context.Context, id int) (bool, error) {
	r.logger.Debug("Iniciando DeleteUsuario no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar usuário do DB.", err)
		return false, apperror.NewDBError("Falha ao deletar usuário", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteUsuario.", err)
		return false, apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}

	if rowsAffected == 0 {
		r.logger.Info("Usuário não encontrado para exclusão.", map[string]interface{}{"id": id})
		return false, nil
	}

	r.logger.Info("Usuário deletado com sucesso.", map[string]interface{}{"id": id})
	return true, nil
}
