package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"delegacia/internal/api/response"
	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_ValidationCarriesFieldMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/agentes", nil)

	response.Error(rec, req, logger.NewNop(), apperror.NewValidationError("nome não pode ser vazio", "cargo não pode ser vazio"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, domain.ErrorResponse{
		Status:  400,
		Message: "nome não pode ser vazio, cargo não pode ser vazio",
		Errors:  []string{"nome não pode ser vazio", "cargo não pode ser vazio"},
	}, decode(t, rec))
}

func TestError_NotFoundHasEmptyErrorsList(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/casos/9", nil)

	response.Error(rec, req, logger.NewNop(), apperror.NewNotFoundError("Não foi possível encontrar o caso de Id: 9."))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"Não foi possível encontrar o caso de Id: 9.","errors":[]}`, rec.Body.String())
}

func TestError_InternalHidesCauseAndLogsIt(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/agentes", nil)

	response.Error(rec, req, logger.New(zap.New(core)), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, apperror.GenericInternalMessage, body.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestJSON_NilDataWritesNoBody(t *testing.T) {
	rec := httptest.NewRecorder()

	response.JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
