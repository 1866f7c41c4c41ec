package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-cadastro/docs"
	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/handlers"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/middleware"
	"github.com/prefeitura-rio/app-cadastro/internal/observability"
	"github.com/prefeitura-rio/app-cadastro/internal/repository"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
	"github.com/prefeitura-rio/app-cadastro/internal/utils"
)

// @title           Sistema de Cadastro API
// @version         1.0
// @description     API de cadastro de pessoas físicas e jurídicas, seus endereços, telefones e endereços eletrônicos, com tabelas auxiliares e autenticação JWT por perfil (administrador, usuário e convidado).

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Informe "Bearer {token}"

// @tag.name auth
// @tag.description Autenticação e contas de usuário

// @tag.name pessoa
// @tag.description Operações comuns a pessoas físicas e jurídicas

// @tag.name auxiliares
// @tag.description Tabelas de referência

// @tag.name health
// @tag.description Verificação de saúde

func main() {
	_ = godotenv.Load()

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Logger.Sync()

	if err := run(); err != nil {
		logging.Logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	logging.Logger.Info("server exited gracefully")
}

func run() error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.AppConfig

	observability.InitTracer()
	defer observability.ShutdownTracer()

	ctx := context.Background()
	if err := config.InitPostgres(ctx); err != nil {
		return err
	}
	defer config.Postgres.Close()

	config.InitMongoDB()
	config.InitRedis()

	if config.MongoDB != nil {
		collection := config.MongoDB.Collection(cfg.AuditLogsCollection)
		utils.InitAuditWorker(utils.NewMongoAuditWriter(collection), cfg.AuditWorkerCount, cfg.AuditBufferSize)
		defer utils.ShutdownAuditWorker()
	}

	logger := logging.Logger
	repos := services.NewRepositories(config.Postgres)
	tx := repository.NewTxRunner(config.Postgres)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	limiter := services.NewLoginLimiter(config.Redis, cfg.LoginMaxAttempts, cfg.LoginLockoutWindow, logger)
	authService := services.NewAuthService(repos, tokens, services.NewPasswordHasher(0), limiter, logger)

	h := handlers.Handlers{
		Auth:           handlers.NewAuthHandlers(authService, logger),
		Pessoa:         handlers.NewPessoaHandlers(services.NewPessoaService(tx, repos, logger), logger),
		PessoaFisica:   handlers.NewPessoaFisicaHandlers(services.NewPessoaFisicaService(tx, repos, logger), logger),
		PessoaJuridica: handlers.NewPessoaJuridicaHandlers(services.NewPessoaJuridicaService(tx, repos, logger), logger),
		Lookup:         handlers.NewLookupHandlers(services.NewLookupService(repos.Lookups, config.Redis, cfg.CEPCacheTTL, logger), logger),
		Health:         handlers.NewHealthHandlers(config.Postgres, config.Redis, config.MongoDB, cfg.Version, logger),
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handlers.RegisterRoutes(router, h, authService)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// corsConfig allows every origin when the list is empty or holds "*"
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")
	cfg.ExposeHeaders = []string{"X-Request-ID", "Location"}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
