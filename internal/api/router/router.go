package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registra a especificação servida em /docs/doc.json
	_ "delegacia/docs"
	"delegacia/internal/api/agente"
	"delegacia/internal/api/caso"
	"delegacia/internal/api/response"
	"delegacia/internal/api/usuario"
	"delegacia/internal/domain"
	"delegacia/internal/pkg/cache"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/pkg/middleware"
)

const (
	MsgRotaNaoEncontrada  = "Rota não encontrada. Verifique as rotas disponiveis em /docs"
	MsgMetodoNaoPermitido = "Método não permitido para esta rota. Verifique as rotas disponiveis em /docs"
)

// Options reúne as dependências transversais do roteador.
// Cache nil desliga o rate limiting.
type Options struct {
	Logger          logger.Logger
	Tokens          middleware.TokenValidator
	Cache           cache.Client
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(opts Options, agenteHandler *agente.Handler, casoHandler *caso.Handler, usuarioHandler *usuario.Handler) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer(opts.Logger))
	r.Use(middleware.Metrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusNotFound, domain.ErrorResponse{
			Status:  http.StatusNotFound,
			Message: MsgRotaNaoEncontrada,
			Errors:  []string{},
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, domain.ErrorResponse{
			Status:  http.StatusMethodNotAllowed,
			Message: MsgMetodoNaoPermitido,
			Errors:  []string{},
		})
	})

	// --- 2. Rotas operacionais ---
	r.Get("/ping", PingHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// --- 3. Rotas da API ---
	r.Group(func(api chi.Router) {
		if opts.Cache != nil {
			api.Use(middleware.RateLimiter(opts.Cache, opts.RateLimitMax, opts.RateLimitWindow, opts.Logger))
		}

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", usuarioHandler.LoginUserHandler)
			auth.Post("/logout", usuarioHandler.LogoutHandler)
			auth.Post("/register", usuarioHandler.RegisterUserHandler)
		})

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.NewAuthMiddleware(opts.Tokens, opts.Logger))

			protected.Route("/agentes", agenteHandler.Routes)
			protected.Route("/casos", casoHandler.Routes)
			protected.Get("/usuarios/me", usuarioHandler.MeHandler)
			protected.Delete("/users/{id}", usuarioHandler.DeleteUsuarioHandler)
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
