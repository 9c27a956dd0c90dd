package usuarioservice

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

const (
	// MsgCredenciaisInvalidas é a única resposta para e-mail desconhecido ou senha errada.
	MsgCredenciaisInvalidas = "Credenciais inválidas."
	MsgUsuarioNaoEncontrado = "Usuário não encontrado."
)

// UsuarioRepository define o contrato de persistência de usuários.
type UsuarioRepository interface {
	CreateUsuario(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error)
	GetUsuarioByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	GetUsuarioByID(ctx context.Context, id int) (*domain.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) (bool, error)
}

// TokenGenerator é o contrato da camada de token (internal/pkg/token) usado no login.
type TokenGenerator interface {
	GenerateToken(id int, nome, email string) (string, error)
}

// UsuarioService define o serviço de lógica de negócio para a entidade Usuario.
type UsuarioService struct {
	repo     UsuarioRepository
	tokens   TokenGenerator
	logger   logger.Logger
	hashCost int
}

// NewService cria uma nova instância do UsuarioService, injetando o Repositório.
func NewService(repo UsuarioRepository, tokens TokenGenerator, logger logger.Logger) *UsuarioService {
	return &UsuarioService{
		repo:     repo,
		tokens:   tokens,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost ajusta o custo do bcrypt (testes usam bcrypt.MinCost).
func (s *UsuarioService) WithHashCost(cost int) *UsuarioService {
	s.hashCost = cost
	return s
}

// Register registra um novo usuário, rejeitando e-mails já cadastrados.
// A senha é persistida apenas como hash bcrypt.
func (s *UsuarioService) Register(ctx context.Context, registration domain.UsuarioRegistration) (domain.Usuario, error) {
	s.logger.Debug("Iniciando registro de usuário no serviço.", map[string]interface{}{"email": registration.Email})

	existing, err := s.repo.GetUsuarioByEmail(ctx, registration.Email)
	if err != nil {
		s.logger.Error("Falha ao verificar e-mail existente.", err)
		return domain.Usuario{}, err
	}
	if existing != nil {
		s.logger.Info("Registro recusado: e-mail já cadastrado.", map[string]interface{}{"email": registration.Email})
		return domain.Usuario{}, apperror.NewConflictError(domain.MsgEmailDuplicado)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(registration.Senha), s.hashCost)
	if err != nil {
		s.logger.Error("Falha ao gerar hash da senha.", err)
		return domain.Usuario{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	created, err := s.repo.CreateUsuario(ctx, domain.Usuario{
		Nome:      registration.Nome,
		Email:     registration.Email,
		SenhaHash: string(hashed),
	})
	if err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário registrado com sucesso.", map[string]interface{}{"user_id": created.ID})
	created.SenhaHash = ""
	return created, nil
}

// Login autentica o usuário e devolve um JWT. E-mail desconhecido e senha errada
// produzem o mesmo erro.
func (s *UsuarioService) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	s.logger.Debug("Iniciando login no serviço.", map[string]interface{}{"email_attempt": creds.Email})

	usuario, err := s.repo.GetUsuarioByEmail(ctx, creds.Email)
	if err != nil {
		s.logger.Error("Falha ao buscar usuário para login.", err)
		return "", err
	}
	if usuario == nil {
		s.logger.Info("Login recusado.", map[string]interface{}{"email_attempt": creds.Email})
		return "", apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(creds.Senha)); err != nil {
		s.logger.Info("Login recusado.", map[string]interface{}{"email_attempt": creds.Email})
		return "", apperror.NewUnauthorizedError(MsgCredenciaisInvalidas)
	}

	tokenString, err := s.tokens.GenerateToken(usuario.ID, usuario.Nome, usuario.Email)
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": usuario.ID})
	return tokenString, nil
}

// Me retorna a conta do usuário autenticado, sem o hash da senha.
func (s *UsuarioService) Me(ctx context.Context, id int) (domain.Usuario, error) {
	usuario, err := s.repo.GetUsuarioByID(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao buscar usuário autenticado.", err)
		return domain.Usuario{}, err
	}
	if usuario == nil {
		return domain.Usuario{}, apperror.NewNotFoundError(MsgUsuarioNaoEncontrado)
	}

	usuario.SenhaHash = ""
	return *usuario, nil
}

// DeleteUsuario remove uma conta.
func (s *UsuarioService) DeleteUsuario(ctx context.Context, id int) error {
	s.logger.Debug("Iniciando remoção de usuário no serviço.", map[string]interface{}{"id": id})

	deleted, err := s.repo.DeleteUsuario(ctx, id)
	if err != nil {
		s.logger.Error("Falha ao remover usuário no repositório.", err)
		return err
	}
	if !deleted {
		return apperror.NewNotFoundError(MsgUsuarioNaoEncontrado)
	}

	s.logger.Info("Usuário removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
