package caso

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
	MsgIDInvalido       = "ID inválido."
	MsgStatusInvalido   = "O parâmetro 'status' deve ser 'aberto' ou 'solucionado'."
	MsgAgenteIDInvalido = "O parâmetro 'agente_id' deve ser um número inteiro positivo."
)

// CasoService define o contrato que o Handler espera da camada de Serviço.
type CasoService interface {
	ListCasos(ctx context.Context, filter domain.CasoFilter) ([]domain.Caso, error)
	SearchCasos(ctx context.Context, q string) ([]domain.Caso, error)
	GetCaso(ctx context.Context, id int) (domain.Caso, error)
	GetAgenteOfCaso(ctx context.Context, id int) (domain.Agente, error)
	CreateCaso(ctx context.Context, caso domain.Caso) (domain.Caso, error)
	UpdateCaso(ctx context.Context, id int, caso domain.Caso) (domain.Caso, error)
	PatchCaso(ctx context.Context, id int, patch domain.CasoPatch) (domain.Caso, error)
	DeleteCaso(ctx context.Context, id int) error
}

// Handler agrupa todos os métodos de Handler de casos.
type Handler struct {
	Service CasoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CasoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// Routes registra as rotas de /casos. /search vem antes de /{id}.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListCasosHandler)
	r.Post("/", h.CreateCasoHandler)
	r.Get("/search", h.SearchCasosHandler)
	r.Get("/{id}", h.GetCasoHandler)
	r.Get("/{id}/agente", h.GetAgenteOfCasoHandler)
	r.Put("/{id}", h.UpdateCasoHandler)
	r.Patch("/{id}", h.PatchCasoHandler)
	r.Delete("/{id}", h.DeleteCasoHandler)
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, successStatus, data)
}

// pathID lê {id} da rota; ids são int4 no banco, então valores fora dessa faixa são 400.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, apperror.NewValidationError(MsgIDInvalido)
	}
	return int(id), nil
}

// parseFilter valida os filtros de listagem; ambos são opcionais.
func parseFilter(r *http.Request) (domain.CasoFilter, error) {
	query := r.URL.Query()
	var filter domain.CasoFilter

	if raw := query.Get("status"); raw != "" {
		status := domain.CasoStatus(raw)
		if !status.Valid() {
			return filter, apperror.NewValidationError(MsgStatusInvalido)
		}
		filter.Status = status
	}

	if raw := query.Get("agente_id"); raw != "" {
		agenteID, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || agenteID <= 0 {
			return filter, apperror.NewValidationError(MsgAgenteIDInvalido)
		}
		filter.AgenteID = int(agenteID)
	}

	return filter, nil
}

// ListCasosHandler lida com a requisição GET /casos.
// @Summary Lista casos
// @Description Filtros opcionais por status e agente_id, combinados com AND.
// @Tags casos
// @Produce json
// @Param status query string false "aberto ou solucionado"
// @Param agente_id query int false "ID do agente responsável"
// @Success 200 {array} domain.Caso "Lista de casos"
// @Failure 400 {object} domain.ErrorResponse "Filtro inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security BearerAuth
// @Router /casos [get]
func (h *Handler) ListCasosHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	casos, err := h.Service.ListCasos(r.Context(), filter)
	h.handleServiceResponse(w, r, casos, err, http.StatusOK)
}

// SearchCasosHandler lida com a requisição GET /casos/search.
// @Summary Pesquisa casos
// @Description Busca o termo em titulo ou descricao, sem diferenciar maiúsculas. Nenhum resultado retorna 404.
// @Tags casos
// @Produce json
// @Param q query string true "Termo de pesquisa"
// @Success 200 {array} domain.Caso "Casos encontrados"
// @Failure 400 {object} domain.ErrorResponse "Termo ausente"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Nenhum caso encontrado"
// @Security BearerAuth
// @Router /casos/search [get]
func (h *Handler) SearchCasosHandler(w http.ResponseWriter, r *http.Request) {
	casos, err := h.Service.SearchCasos(r.Context(), r.URL.Query().Get("q"))
	h.handleServiceResponse(w, r, casos, err, http.StatusOK)
}

// GetCasoHandler lida com a requisição GET /casos/{id}.
// @Summary Obtém um caso por ID
// @Tags casos
// @Produce json
// @Param id path int true "ID do caso"
// @Success 200 {object} domain.Caso "Caso encontrado"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Caso não encontrado"
// @Security BearerAuth
// @Router /casos/{id} [get]
func (h *Handler) GetCasoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	caso, err := h.Service.GetCaso(r.Context(), id)
	h.handleServiceResponse(w, r, caso, err, http.StatusOK)
}

// GetAgenteOfCasoHandler lida com a requisição GET /casos/{id}/agente.
// @Summary Obtém o agente responsável por um caso
// @Tags casos
// @Produce json
// @Param id path int true "ID do caso"
// @Success 200 {object} domain.Agente "Agente responsável"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Caso ou agente não encontrado"
// @Security BearerAuth
// @Router /casos/{id}/agente [get]
func (h *Handler) GetAgenteOfCasoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	agente, err := h.Service.GetAgenteOfCaso(r.Context(), id)
	h.handleServiceResponse(w, r, agente, err, http.StatusOK)
}

// CreateCasoHandler lida com a requisição POST /casos.
// @Summary Cria um novo caso
// @Description agente_id precisa referenciar um agente existente.
// @Tags casos
// @Accept json
// @Produce json
// @Param caso body validation.CasoInput true "Dados do caso"
// @Success 201 {object} domain.Caso "Caso criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Agente não encontrado"
// @Security BearerAuth
// @Router /casos [post]
func (h *Handler) CreateCasoHandler(w http.ResponseWriter, r *http.Request) {
	input, err := validation.DecodeCaso(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	created, err := h.Service.CreateCaso(r.Context(), input)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// UpdateCasoHandler lida com a requisição PUT /casos/{id}.
// @Summary Substitui um caso
// @Tags casos
// @Accept json
// @Produce json
// @Param id path int true "ID do caso"
// @Param caso body validation.CasoInput true "Dados completos do caso"
// @Success 200 {object} domain.Caso "Caso atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Caso ou agente não encontrado"
// @Security BearerAuth
// @Router /casos/{id} [put]
func (h *Handler) UpdateCasoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	input, err := validation.DecodeCaso(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	updated, err := h.Service.UpdateCaso(r.Context(), id, input)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// PatchCasoHandler lida com a requisição PATCH /casos/{id}.
// @Summary Atualiza parcialmente um caso
// @Tags casos
// @Accept json
// @Produce json
// @Param id path int true "ID do caso"
// @Param caso body validation.CasoPatchInput true "Campos a alterar"
// @Success 200 {object} domain.Caso "Caso atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Caso ou agente não encontrado"
// @Security BearerAuth
// @Router /casos/{id} [patch]
func (h *Handler) PatchCasoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	patch, err := validation.DecodeCasoPatch(r.Body)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	updated, err := h.Service.PatchCaso(r.Context(), id, patch)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteCasoHandler lida com a requisição DELETE /casos/{id}.
// @Summary Remove um caso
// @Tags casos
// @Param id path int true "ID do caso"
// @Success 204 "Caso removido"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 404 {object} domain.ErrorResponse "Caso não encontrado"
// @Security BearerAuth
// @Router /casos/{id} [delete]
func (h *Handler) DeleteCasoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, 0)
		return
	}

	err = h.Service.DeleteCaso(r.Context(), id)
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
