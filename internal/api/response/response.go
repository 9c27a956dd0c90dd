// Package response centraliza a escrita de respostas JSON e a tradução de erros
// para o corpo padronizado {status, message, errors}.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"delegacia/internal/domain"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
)

// JSON escreve data com o status informado. data nil produz corpo vazio.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error traduz err para o corpo de erro padronizado. Erros 5xx são registrados com a
// causa; o cliente recebe apenas a mensagem genérica.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path":   r.URL.Path,
			"method": r.Method,
		})
	}

	JSON(w, status, domain.ErrorResponse{
		Status:  status,
		Message: message,
		Errors:  apperror.MessagesOf(err),
	})
}
