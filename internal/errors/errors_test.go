package errors_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "delegacia/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCategory string
		wantMessage  string
	}{
		{"validação", apperror.NewValidationError("a", "b"), http.StatusBadRequest, "VALIDATION_ERROR", "a, b"},
		{"não encontrado", apperror.NewNotFoundError("sumiu"), http.StatusNotFound, "NOT_FOUND", "sumiu"},
		{"não autorizado", apperror.NewUnauthorizedError("Credenciais inválidas."), http.StatusUnauthorized, "UNAUTHORIZED", "Credenciais inválidas."},
		{"conflito vira 400", apperror.NewConflictError("E-mail já cadastrado."), http.StatusBadRequest, "CONFLICT", "E-mail já cadastrado."},
		{"interno esconde detalhes", apperror.NewDBError("falha ao inserir", sql.ErrConnDone), http.StatusInternalServerError, "INTERNAL_ERROR", apperror.GenericInternalMessage},
		{"não tipado", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR", apperror.GenericInternalMessage},
		{"encapsulado", fmt.Errorf("camada: %w", apperror.NewNotFoundError("x")), http.StatusNotFound, "NOT_FOUND", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestMessagesOf(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, apperror.MessagesOf(apperror.NewValidationError("a", "b")))
	assert.Equal(t, []string{}, apperror.MessagesOf(apperror.NewValidationError()))
	assert.Equal(t, []string{}, apperror.MessagesOf(apperror.NewNotFoundError("x")))
	assert.Equal(t, []string{}, apperror.MessagesOf(errors.New("boom")))
}

func TestInternalError_Unwrap(t *testing.T) {
	err := apperror.NewDBError("falha ao buscar", sql.ErrConnDone)

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "falha ao buscar (DB)")
}
