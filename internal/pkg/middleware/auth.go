package middleware

import (
	"context"
	"net/http"
	"strings"

	"delegacia/internal/api/response"
	apperror "delegacia/internal/errors"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/pkg/token"
)

// contextKey é o tipo das chaves que este pacote grava no contexto.
// Context Keys devem ser não-exportadas e de um tipo único.
type contextKey int

const (
	userClaimsKey contextKey = iota
	requestIDKey
)

const (
	MsgTokenNaoFornecido = "Token não fornecido."
	MsgTokenInvalido     = "Token inválido ou expirado."
)

// UserClaims representa os dados do usuário extraídos do token JWT,
// que serão anexados ao contexto.
type UserClaims struct {
	ID    int
	Nome  string
	Email string
}

// TokenValidator define o contrato de validação necessário para o middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware cria um middleware que exige "Authorization: Bearer <token>",
// valida o JWT e anexa as claims ao contexto da requisição.
func NewAuthMiddleware(tokenSvc TokenValidator, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, tokenString, _ := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
			tokenString = strings.TrimSpace(tokenString)
			if tokenString == "" {
				response.Error(w, r, log, apperror.NewUnauthorizedError(MsgTokenNaoFornecido))
				return
			}
			if !strings.EqualFold(scheme, "Bearer") {
				response.Error(w, r, log, apperror.NewUnauthorizedError(MsgTokenInvalido))
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				log.Debug("Token rejeitado.", map[string]interface{}{"reason": err.Error()})
				response.Error(w, r, log, apperror.NewUnauthorizedError(MsgTokenInvalido))
				return
			}

			ctx := WithUserClaims(r.Context(), UserClaims{
				ID:    claims.ID,
				Nome:  claims.Nome,
				Email: claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserClaims anexa as claims do usuário autenticado ao contexto.
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(UserClaims)
	return claims, ok
}
