package agente

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"delegacia/internal/api/response"
	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/validation"
)

const (
	MsgIDInvalido   = "ID inválido."
	MsgSortInvalido = "O parâmetro 'sort' deve ser 'dataDeIncorporacao' ou '-dataDeIncorporacao'."
)

// AgenteService define o contrato que o Handler espera da camada de Serviço.
type AgenteService interface {
	ListAgentes(ctx context.Context, filter domain.AgenteFilter) ([]domain.Agente, error)
	GetAgente(ctx context.Context, id int) (domain.Agente, error)
	CreateAgente(ctx context.Context, agente domain.Agente) (domain.Agente, error)
	UpdateAgente(ctx context.Context, id int, agente domain.Agente) (domain.Agente, error)
	PatchAgente(ctx context.Context, id int, patch domain.AgentePatch) (domain.Agente, error)
	DeleteAgente(ctx context.Context, id int) error
}

// Handler agrupa todos os métodos de Handler de agentes.
type Handler struct {
	Service AgenteService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AgenteService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// Routes registra as rotas de /agentes no roteador informado.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListAgentesHandler)
	r.Post("/", h.CreateAgenteHandler)
	r.Get("/{id}", h.GetAgenteHandler)
	r.Put("/{id}", h.UpdateAgenteHandler)
	r.Patch("/{id}", h.PatchAgenteHandler)
	r.Delete("/{id}", h.DeleteAgenteHandler)
}

// handleServiceResponse envia data com successStatus, ou o corpo de erro padronizado.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, successStatus, data)
}

// pathID lê {id} da rota; valores não numéricos ou fora da faixa int4 são 400.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, apperror.NewValidationError(MsgIDInvalido)
	}
	return int(id), nil
}

// ListAgentesHandler lida com a requisição GET /agentes.
// @Summary Lista agentes
// @Description Lista todos os agentes, com filtro opcional por cargo e ordenação pela data de incorporação.
// @Tags agentes
// @Produce json
// @Param cargo query string false "Filtra por cargo (substring, sem diferenciar maiúsculas)"
// @Param sort query string false "dataDeIncorporacao (crescente) ou -dataDeIncorporacao (decrescente)"
// @Success 200 {array} domain.Agente "Lista de agentes"
// @Failure 400 {object} domain.ErrorResponse "Parâmetro sort inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security BearerAuth
// @Router /agentes [get]
func (h *Handler) ListAgentesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sort, ok := domain.ParseAgenteSort(query.Get("sort"))
	if !ok {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(MsgSortInvalido), 0)
		return
	}

	agentes, err := h.Service.ListAgentes(r.Context(), domain.AgenteFilter{
		Cargo: query.Get("cargo"),
		Sort:  sort,
	})
	h.handleServiceResponse(w, r, agentes, err, http.StatusOK)
}

// GetAgenteHandler lida com a requisição GET /agentes/{id}.
// @Summary Obtém um agente por ID
// @Tags agentes
// @Produce json
// @Param id path int true "ID do agente"
// @Success 200 {object} domain.Agente "Agente encontrado"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Agente não encontrado"
// @Security BearerAuth
// @Router /agentes/{id} [get]
func (h *Handler) GetAgenteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	agente, err := h.Service.GetAgente(r.Context(), id)
	h.handleServiceResponse(w, r, agente, err, http.StatusOK)
}

// CreateAgenteHandler lida com a requisição POST /agentes.
// @Summary Cria um novo agente
// @Description dataDeIncorporacao aceita YYYY-MM-DD ou YYYY/MM/DD e não pode ser futura.
// @Tags agentes
// @Accept json
// @Produce json
// @Param agente body validation.AgenteInput true "Dados do agente"
// @Success 201 {object} domain.Agente "Agente criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security BearerAuth
// @Router /agentes [post]
func (h *Handler) CreateAgenteHandler(w http.ResponseWriter, r *http.Request) {
	input, err := validation.DecodeAgente(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	created, err := h.Service.CreateAgente(r.Context(), input)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// UpdateAgenteHandler lida com a requisição PUT /agentes/{id}.
// @Summary Substitui um agente
// @Tags agentes
// @Accept json
// @Produce json
// @Param id path int true "ID do agente"
// @Param agente body validation.AgenteInput true "Dados completos do agente"
// @Success 200 {object} domain.Agente "Agente atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Agente não encontrado"
// @Security BearerAuth
// @Router /agentes/{id} [put]
func (h *Handler) UpdateAgenteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	input, err := validation.DecodeAgente(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	updated, err := h.Service.UpdateAgente(r.Context(), id, input)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// PatchAgenteHandler lida com a requisição PATCH /agentes/{id}.
// @Summary Atualiza parcialmente um agente
// @Description Apenas os campos enviados são alterados; cada um segue as mesmas regras da criação.
// @Tags agentes
// @Accept json
// @Produce json
// @Param id path int true "ID do agente"
// @Param agente body validation.AgentePatchInput true "Campos a alterar"
// @Success 200 {object} domain.Agente "Agente atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Agente não encontrado"
// @Security BearerAuth
// @Router /agentes/{id} [patch]
func (h *Handler) PatchAgenteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	patch, err := validation.DecodeAgentePatch(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	updated, err := h.Service.PatchAgente(r.Context(), id, patch)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteAgenteHandler lida com a requisição DELETE /agentes/{id}.
// @Summary Remove um agente
// @Description Os casos do agente são removidos em cascata.
// @Tags agentes
// @Param id path int true "ID do agente"
// @Success 204 "Agente removido"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Agente não encontrado"
// @Security BearerAuth
// @Router /agentes/{id} [delete]
func (h *Handler) DeleteAgenteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	err = h.Service.DeleteAgente(r.Context(), id)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
