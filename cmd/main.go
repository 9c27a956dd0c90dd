package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"delegacia/config"
	"delegacia/internal/pkg/cache"
	"delegacia/internal/pkg/database"
	"delegacia/internal/pkg/logger"
	"delegacia/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"delegacia/internal/api/agente" // Handlers
	"delegacia/internal/api/caso"
	"delegacia/internal/api/router" // Roteador central
	"delegacia/internal/api/usuario"
	"delegacia/internal/repository/agenterepo" // Acesso a Dados
	"delegacia/internal/repository/casorepo"
	"delegacia/internal/repository/usuariorepo"
	"delegacia/internal/service/agenteservice" // Lógica de Negócio
	"delegacia/internal/service/casoservice"
	"delegacia/internal/service/usuarioservice"
)

// @title API da Delegacia
// @version 1.0
// @description Gestão de agentes, casos e usuários do departamento de polícia.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos apenas com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Inicialização
	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Erro de configuração: %v", err)
	}

	zl := logger.NewLogger(cfg.LogLevel)
	log := zl.With(map[string]interface{}{"service": "delegacia", "env": cfg.Environment})
	defer func() {
		if s, ok := zl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
	}()
	log.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Migrate(ctx, db, "up")
		cancel()
		if err != nil {
			log.Fatal("Falha ao aplicar migrações.", err)
		}
		log.Info("Migrações aplicadas.", nil)
	}

	// B. Rate limiting (Redis, opcional)
	var cacheClient cache.Client
	if cfg.RateLimitEnabled() {
		rc, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			log.Warn("Redis indisponível; rate limiting desativado.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		} else {
			cacheClient = rc
			defer rc.Close()
			log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	agenteRepo := agenterepo.NewAgenteRepository(db, cfg.DBTimeout, log)
	casoRepo := casorepo.NewCasoRepository(db, cfg.DBTimeout, log)
	usuarioRepo := usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	agenteSvc := agenteservice.NewService(agenteRepo, log)
	casoSvc := casoservice.NewService(casoRepo, agenteRepo, log)
	usuarioSvc := usuarioservice.NewService(usuarioRepo, tokenSvc, log)
	log.Debug("Serviços inicializados.", nil)

	agenteHandler := agente.NewHandler(agenteSvc, log)
	casoHandler := caso.NewHandler(casoSvc, log)
	usuarioHandler := usuario.NewHandler(usuarioSvc, log)
	log.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(router.Options{
		Logger:          log,
		Tokens:          tokenSvc,
		Cache:           cacheClient,
		RateLimitMax:    cfg.RateLimitMaxRequests,
		RateLimitWindow: cfg.RateLimitPeriod,
	}, agenteHandler, casoHandler, usuarioHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Servidor da delegacia ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)
	case err := <-serverErr:
		log.Error("Servidor falhou.", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
