package agente_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"delegacia/internal/api/agente"
	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

type MockAgenteService struct {
	mock.Mock
}

func (m *MockAgenteService) ListAgentes(ctx context.Context, filter domain.AgenteFilter) ([]domain.Agente, error) {
	args := m.Called(ctx, filter)
	agentes, _ := args.Get(0).([]domain.Agente)
	return agentes, args.Error(1)
}

func (m *MockAgenteService) GetAgente(ctx context.Context, id int) (domain.Agente, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Agente), args.Error(1)
}

func (m *MockAgenteService) CreateAgente(ctx context.Context, a domain.Agente) (domain.Agente, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(domain.Agente), args.Error(1)
}

func (m *MockAgenteService) UpdateAgente(ctx context.Context, id int, a domain.Agente) (domain.Agente, error) {
	args := m.Called(ctx, id, a)
	return args.Get(0).(domain.Agente), args.Error(1)
}

func (m *MockAgenteService) PatchAgente(ctx context.Context, id int, patch domain.AgentePatch) (domain.Agente, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Agente), args.Error(1)
}

func (m *MockAgenteService) DeleteAgente(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newServer(svc *MockAgenteService) http.Handler {
	r := chi.NewRouter()
	r.Route("/agentes", agente.NewHandler(svc, logger.NewNop()).Routes)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var rommel = domain.Agente{ID: 1, Nome: "Rommel Carneiro", DataDeIncorporacao: "1992-10-04", Cargo: "delegado"}

func TestListAgentesHandler(t *testing.T) {
	t.Run("repassa cargo e ordenação", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("ListAgentes", mock.Anything, domain.AgenteFilter{Cargo: "delegado", Sort: domain.SortDataDesc}).
			Return([]domain.Agente{rommel}, nil).Once()

		rec := do(t, newServer(svc), http.MethodGet, "/agentes?cargo=delegado&sort=-dataDeIncorporacao", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Agente
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []domain.Agente{rommel}, got)
		svc.AssertExpectations(t)
	})

	t.Run("ordenação crescente", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("ListAgentes", mock.Anything, domain.AgenteFilter{Sort: domain.SortDataAsc}).
			Return([]domain.Agente{}, nil).Once()

		rec := do(t, newServer(svc), http.MethodGet, "/agentes?sort=dataDeIncorporacao", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("sort inválido é 400", func(t *testing.T) {
		svc := new(MockAgenteService)

		rec := do(t, newServer(svc), http.MethodGet, "/agentes?sort=nome", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.Equal(t, agente.MsgSortInvalido, body.Message)
		svc.AssertNotCalled(t, "ListAgentes", mock.Anything, mock.Anything)
	})
}

func TestGetAgenteHandler(t *testing.T) {
	t.Run("encontrado", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("GetAgente", mock.Anything, 1).Return(rommel, nil).Once()

		rec := do(t, newServer(svc), http.MethodGet, "/agentes/1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"nome":"Rommel Carneiro","dataDeIncorporacao":"1992-10-04","cargo":"delegado"}`, rec.Body.String())
	})

	t.Run("não encontrado", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("GetAgente", mock.Anything, 99).
			Return(domain.Agente{}, apperror.NewNotFoundError("Não foi possível encontrar o agente de Id: 99")).Once()

		rec := do(t, newServer(svc), http.MethodGet, "/agentes/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, 404, body.Status)
		assert.Equal(t, "Não foi possível encontrar o agente de Id: 99", body.Message)
	})

	for _, raw := range []string{"abc", "3000000000"} {
		t.Run("id inválido "+raw, func(t *testing.T) {
			svc := new(MockAgenteService)

			rec := do(t, newServer(svc), http.MethodGet, "/agentes/"+raw, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, agente.MsgIDInvalido, decodeError(t, rec).Message)
			svc.AssertNotCalled(t, "GetAgente", mock.Anything, mock.Anything)
		})
	}

	t.Run("erro inesperado vira 500 genérico", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("GetAgente", mock.Anything, 1).
			Return(domain.Agente{}, apperror.NewDBError("falha", assert.AnError)).Once()

		rec := do(t, newServer(svc), http.MethodGet, "/agentes/1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apperror.GenericInternalMessage, decodeError(t, rec).Message)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestCreateAgenteHandler(t *testing.T) {
	t.Run("criado com data normalizada", func(t *testing.T) {
		svc := new(MockAgenteService)
		input := domain.Agente{Nome: "Ana", DataDeIncorporacao: "2020-01-15", Cargo: "inspetor"}
		svc.On("CreateAgente", mock.Anything, input).Return(domain.Agente{ID: 4, Nome: "Ana", DataDeIncorporacao: "2020-01-15", Cargo: "inspetor"}, nil).Once()

		rec := do(t, newServer(svc), http.MethodPost, "/agentes", `{"nome":"Ana","dataDeIncorporacao":"2020/01/15","cargo":"inspetor"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.JSONEq(t, `{"id":4,"nome":"Ana","dataDeIncorporacao":"2020-01-15","cargo":"inspetor"}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("data futura é 400 e nada é criado", func(t *testing.T) {
		svc := new(MockAgenteService)
		future := time.Now().AddDate(1, 0, 0).Format(domain.DateLayout)

		rec := do(t, newServer(svc), http.MethodPost, "/agentes", `{"nome":"Ana","dataDeIncorporacao":"`+future+`","cargo":"inspetor"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, 400, body.Status)
		assert.NotEmpty(t, body.Errors)
		svc.AssertNotCalled(t, "CreateAgente", mock.Anything, mock.Anything)
	})

	t.Run("campos ausentes", func(t *testing.T) {
		svc := new(MockAgenteService)

		rec := do(t, newServer(svc), http.MethodPost, "/agentes", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, decodeError(t, rec).Errors, 3)
	})
}

func TestUpdateAgenteHandler(t *testing.T) {
	t.Run("substitui", func(t *testing.T) {
		svc := new(MockAgenteService)
		input := domain.Agente{Nome: "Rommel", DataDeIncorporacao: "1992-10-04", Cargo: "inspetor"}
		svc.On("UpdateAgente", mock.Anything, 1, input).Return(domain.Agente{ID: 1, Nome: "Rommel", DataDeIncorporacao: "1992-10-04", Cargo: "inspetor"}, nil).Once()

		rec := do(t, newServer(svc), http.MethodPut, "/agentes/1", `{"nome":"Rommel","dataDeIncorporacao":"1992-10-04","cargo":"inspetor"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("não encontrado", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("UpdateAgente", mock.Anything, 50, mock.Anything).
			Return(domain.Agente{}, apperror.NewNotFoundError("Agente não encontrado.")).Once()

		rec := do(t, newServer(svc), http.MethodPut, "/agentes/50", `{"nome":"Rommel","dataDeIncorporacao":"1992-10-04","cargo":"inspetor"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Agente não encontrado.", decodeError(t, rec).Message)
	})

	t.Run("payload parcial é rejeitado no PUT", func(t *testing.T) {
		svc := new(MockAgenteService)

		rec := do(t, newServer(svc), http.MethodPut, "/agentes/1", `{"cargo":"inspetor"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UpdateAgente", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPatchAgenteHandler(t *testing.T) {
	t.Run("altera só o cargo", func(t *testing.T) {
		svc := new(MockAgenteService)
		cargo := "X"
		svc.On("PatchAgente", mock.Anything, 1, domain.AgentePatch{Cargo: &cargo}).
			Return(domain.Agente{ID: 1, Nome: "Rommel Carneiro", DataDeIncorporacao: "1992-10-04", Cargo: "X"}, nil).Once()

		rec := do(t, newServer(svc), http.MethodPatch, "/agentes/1", `{"cargo":"X"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"nome":"Rommel Carneiro","dataDeIncorporacao":"1992-10-04","cargo":"X"}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("corpo vazio", func(t *testing.T) {
		svc := new(MockAgenteService)

		rec := do(t, newServer(svc), http.MethodPatch, "/agentes/1", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"Nenhum campo informado para atualização."}, decodeError(t, rec).Errors)
		svc.AssertNotCalled(t, "PatchAgente", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteAgenteHandler(t *testing.T) {
	t.Run("removido", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("DeleteAgente", mock.Anything, 1).Return(nil).Once()

		rec := do(t, newServer(svc), http.MethodDelete, "/agentes/1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("não encontrado", func(t *testing.T) {
		svc := new(MockAgenteService)
		svc.On("DeleteAgente", mock.Anything, 7).Return(apperror.NewNotFoundError("Agente não encontrado.")).Once()

		rec := do(t, newServer(svc), http.MethodDelete, "/agentes/7", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
