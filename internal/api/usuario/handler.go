package usuario

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"delegacia/internal/api/response"
	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/pkg/middleware"
	"delegacia/internal/validation"
)

const (
	MsgIDInvalido         = "ID inválido."
	MsgLoginSucesso       = "Login realizado com sucesso"
	MsgRegistroSucesso    = "Usuário registrado com sucesso"
	MsgLogoutSucesso      = "Logout realizado com sucesso, apague o token localmente"
	MsgUsuarioNaoAutentic = "Usuário não autenticado."
)

// UsuarioService define o contrato para registro, login e gestão da conta.
type UsuarioService interface {
	Register(ctx context.Context, registration domain.UsuarioRegistration) (domain.Usuario, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	Me(ctx context.Context, id int) (domain.Usuario, error)
	DeleteUsuario(ctx context.Context, id int) error
}

// LoginResponse é o corpo de sucesso do login.
type LoginResponse struct {
	Status      int    `json:"status" example:"200"`
	Message     string `json:"message" example:"Login realizado com sucesso"`
	AccessToken string `json:"access_token"`
}

// RegisterResponse é o corpo de sucesso do registro.
type RegisterResponse struct {
	Status  int            `json:"status" example:"201"`
	Message string         `json:"message" example:"Usuário registrado com sucesso"`
	User    domain.Usuario `json:"user"`
}

// MessageResponse é usado pelo logout.
type MessageResponse struct {
	Status  int    `json:"status" example:"200"`
	Message string `json:"message"`
}

// MeResponse devolve a conta autenticada.
type MeResponse struct {
	Status int            `json:"status" example:"200"`
	User   domain.Usuario `json:"user"`
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UsuarioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UsuarioService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, successStatus, data)
}

// RegisterUserHandler lida com a requisição POST /auth/register.
// @Summary Registra um novo usuário
// @Description Valida nome, e-mail e a política de senha, e salva apenas o hash bcrypt.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body validation.RegisterInput true "Dados de registro"
// @Success 201 {object} RegisterResponse "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou e-mail já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	reg, err := validation.DecodeRegistration(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	newUser, err := h.Service.Register(r.Context(), reg)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, RegisterResponse{
		Status:  http.StatusCreated,
		Message: MsgRegistroSucesso,
		User:    newUser,
	}, nil, http.StatusCreated)
}

// LoginUserHandler lida com a requisição POST /auth/login.
// @Summary Autentica um usuário e retorna um JWT
// @Description E-mail desconhecido e senha errada retornam a mesma resposta 401.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body validation.LoginInput true "Credenciais do usuário"
// @Success 200 {object} LoginResponse "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/login [post]
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := validation.DecodeCredentials(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	token, err := h.Service.Login(r.Context(), creds)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, LoginResponse{
		Status:      http.StatusOK,
		Message:     MsgLoginSucesso,
		AccessToken: token,
	}, nil, http.StatusOK)
}

// LogoutHandler lida com a requisição POST /auth/logout.
// O token não é invalidado no servidor; os cookies de sessão são limpos.
// @Summary Encerra a sessão
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse "Logout realizado"
// @Router /auth/logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"access_token", "refresh_token"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}

	h.handleServiceResponse(w, r, MessageResponse{
		Status:  http.StatusOK,
		Message: MsgLogoutSucesso,
	}, nil, http.StatusOK)
}

// MeHandler lida com a requisição GET /usuarios/me.
// @Summary Retorna o usuário autenticado
// @Tags auth
// @Produce json
// @Success 200 {object} MeResponse "Usuário autenticado"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security BearerAuth
// @Router /usuarios/me [get]
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		h.handleServiceResponse(w, r, nil, apperror.NewUnauthorizedError(MsgUsuarioNaoAutentic), 0)
		return
	}

	usuario, err := h.Service.Me(r.Context(), claims.ID)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	h.handleServiceResponse(w, r, MeResponse{Status: http.StatusOK, User: usuario}, nil, http.StatusOK)
}

// DeleteUsuarioHandler lida com a requisição DELETE /users/{id}.
// @Summary Remove uma conta de usuário
// @Tags auth
// @Param id path int true "ID do usuário"
// @Success 204 "Usuário removido"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) DeleteUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(MsgIDInvalido), 0)
		return
	}

	err = h.Service.DeleteUsuario(r.Context(), int(id))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
