package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError é a interface central para todos os erros customizados da API.
// Ela permite que o Handler acesse a Categoria, o status HTTP e as mensagens do erro.
type AppError interface {
	Error() string      // Implementa a interface error padrão do Go
	Category() string   // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int    // Código HTTP sugerido para o Handler
	Message() string    // Mensagem segura para o cliente
	Messages() []string // Lista de mensagens individuais (campos inválidos); vazia para os demais erros
	Unwrap() error      // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
// Msgs carrega uma mensagem por restrição violada.
type ValidationError struct {
	Msgs []string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Message()) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Message() string  { return strings.Join(e.Msgs, ", ") }
func (e *ValidationError) Unwrap() error    { return nil }

// Messages devolve a lista de mensagens, nunca nil.
func (e *ValidationError) Messages() []string {
	if e.Msgs == nil {
		return []string{}
	}
	return e.Msgs
}

// NewValidationError cria um novo erro de validação com uma ou mais mensagens.
func NewValidationError(msgs ...string) AppError {
	return &ValidationError{Msgs: msgs}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string      { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string   { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int    { return http.StatusNotFound } // 404
func (e *NotFoundError) Message() string    { return e.Msg }
func (e *NotFoundError) Messages() []string { return []string{} }
func (e *NotFoundError) Unwrap() error      { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// UnauthorizedError representa falha de autenticação (credenciais ou token).
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string      { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string   { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int    { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Message() string    { return e.Msg }
func (e *UnauthorizedError) Messages() []string { return []string{} }
func (e *UnauthorizedError) Unwrap() error      { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ConflictError representa um recurso duplicado (e.g., e-mail já cadastrado).
// A API responde 400 para conflitos, não 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string      { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string   { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int    { return http.StatusBadRequest } // 400
func (e *ConflictError) Message() string    { return e.Msg }
func (e *ConflictError) Messages() []string { return []string{} }
func (e *ConflictError) Unwrap() error      { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
// Msg é registrada em log, mas nunca enviada ao cliente.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string   { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int    { return http.StatusInternalServerError } // 500
func (e *InternalError) Message() string    { return GenericInternalMessage }
func (e *InternalError) Messages() []string { return []string{} }
func (e *InternalError) Unwrap() error      { return e.Err }

// GenericInternalMessage é a única mensagem exposta para erros 500.
const GenericInternalMessage = "Erro interno no servidor"

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria e mensagem pública.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Message()
	}

	// Erro não tipado (e.g., erro simples de pacote Go que não implementa AppError)
	// Tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", GenericInternalMessage
}

// MessagesOf retorna a lista de mensagens individuais de um erro (vazia se não houver).
func MessagesOf(err error) []string {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.Messages()
	}
	return []string{}
}
