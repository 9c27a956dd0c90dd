package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delegacia/internal/domain"
	"delegacia/internal/pkg/cache"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/pkg/middleware"
	"delegacia/internal/pkg/token"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// --- Auth ---

func TestAuthMiddleware(t *testing.T) {
	tokenSvc := token.NewService("segredo-de-teste", time.Hour)
	valid, err := tokenSvc.GenerateToken(7, "Lucas", "lucas@gmail.com")
	require.NoError(t, err)
	otherSecret, err := token.NewService("outro-segredo", time.Hour).GenerateToken(7, "Lucas", "lucas@gmail.com")
	require.NoError(t, err)

	var got middleware.UserClaims
	protected := middleware.NewAuthMiddleware(tokenSvc, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = middleware.GetUserClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"sem header", "", http.StatusUnauthorized, middleware.MsgTokenNaoFornecido},
		{"bearer sem token", "Bearer ", http.StatusUnauthorized, middleware.MsgTokenNaoFornecido},
		{"token malformado", "Bearer abc.def", http.StatusUnauthorized, middleware.MsgTokenInvalido},
		{"assinatura de outro segredo", "Bearer " + otherSecret, http.StatusUnauthorized, middleware.MsgTokenInvalido},
		{"esquema errado", "Basic " + valid, http.StatusUnauthorized, middleware.MsgTokenInvalido},
		{"token válido", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/agentes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.wantStatus, body.Status)
				assert.Equal(t, tt.wantMessage, body.Message)
			}
		})
	}

	assert.Equal(t, middleware.UserClaims{ID: 7, Nome: "Lucas", Email: "lucas@gmail.com"}, got)
}

// --- Rate limit ---

func newLimitedHandler(t *testing.T, limit int) (http.Handler, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(mr.Addr(), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return middleware.RateLimiter(client, limit, time.Minute, logger.NewNop())(ok), mr
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	handler, mr := newLimitedHandler(t, 2)

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/casos", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := do("10.0.0.1:1111")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do("10.0.0.1:2222").Code)

	blocked := do("10.0.0.1:3333")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
	assert.Equal(t, middleware.MsgLimiteExcedido, decodeError(t, blocked).Message)

	// Outro IP tem contador próprio.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1111").Code)

	// Nova janela após a expiração.
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:4444").Code)
}

func TestRateLimiter_FailsOpenWhenRedisIsDown(t *testing.T) {
	handler, mr := newLimitedHandler(t, 1)
	mr.Close()

	req := httptest.NewRequest(http.MethodGet, "/casos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// --- Request id / Recoverer ---

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestRecoverer(t *testing.T) {
	handler := middleware.Recoverer(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/agentes", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Erro interno no servidor", body.Message)
	assert.NotContains(t, rec.Body.String(), "boom")
}
