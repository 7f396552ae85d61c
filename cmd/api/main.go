package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
	httphandlers "github.com/gmagencia/gmfaces-backend/internal/handlers/http"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/middleware"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/config"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/i18n"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/logging"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/mail"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/metrics"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/persistence/postgres"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/storage"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting gmfaces backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.AutoMigrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(i18n.DefaultLocalesDir, "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.DefaultLanguage(),
		"supported_languages", i18nService.SupportedLanguages(),
	)

	// Inicializar repositories
	influencerRepo := postgres.NewInfluencerRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)
	userRepo := postgres.NewUserRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Fila de email em processo: a candidatura nunca espera o SMTP
	notifier := mail.NewQueue(mail.NewSMTPNotifier(&cfg.SMTP), logger)
	notifier.Start()
	defer notifier.Stop()

	// Storage local de imagens
	fileStorage, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		logger.Error("failed to initialize upload storage", "error", err)
		log.Fatal(err)
	}

	// Inicializar services
	influencerService := services.NewInfluencerService(influencerRepo, uow, logger)
	applicationService := services.NewApplicationService(influencerService, notifier, logger)
	analyticsService := services.NewAnalyticsService(analyticsRepo, logger)
	statsService := services.NewStatsService(influencerRepo, analyticsRepo, logger)
	authService := services.NewAuthService(userRepo, logger, cfg.Session.Secret, cfg.Session.MaxAgeDays)

	// Usuário administrativo bootstrap (apenas com a tabela vazia)
	if err := authService.EnsureAdminUser(context.Background(), cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name); err != nil {
		logger.Error("failed to ensure admin user", "error", err)
		log.Fatal(err)
	}

	// Inicializar handlers
	influencerHandler := httphandlers.NewInfluencerHandler(influencerService)
	applicationHandler := httphandlers.NewApplicationHandler(applicationService)
	analyticsHandler := httphandlers.NewAnalyticsHandler(analyticsService)
	statsHandler := httphandlers.NewStatsHandler(statsService)
	authHandler := httphandlers.NewAuthHandler(authService, cfg.Session.CookieName, cfg.IsProduction())
	uploadHandler := httphandlers.NewUploadHandler(fileStorage, logger, cfg.Upload.MaxSizeBytes)

	sessionMiddleware := middleware.NewSessionMiddleware(authService, cfg.Session.CookieName)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterCustomValidations()

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS (credenciais habilitadas por causa do cookie de sessão)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitOrigins(cfg.CORS.AllowedOrigins)
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Métricas Prometheus
	router.Use(metrics.Middleware())
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Imagens enviadas
	router.Static("/uploads", fileStorage.Dir())

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", sessionMiddleware.RequireAdmin(), authHandler.Me)
		}

		gmfaces := api.Group("/gmfaces")
		{
			influencers := gmfaces.Group("/influencers")
			{
				influencers.GET("", influencerHandler.List)
				influencers.GET("/slug/:slug", influencerHandler.GetBySlug)
				influencers.POST("", sessionMiddleware.RequireAdmin(), influencerHandler.Create)
				influencers.PATCH("/reorder", sessionMiddleware.RequireAdmin(), influencerHandler.Reorder)
				influencers.GET("/:id", influencerHandler.Get)
				influencers.PATCH("/:id", sessionMiddleware.RequireAdmin(), influencerHandler.Update)
				influencers.DELETE("/:id", sessionMiddleware.RequireAdmin(), influencerHandler.Delete)
			}

			gmfaces.POST("/applications", applicationHandler.Submit)
			gmfaces.POST("/analytics", analyticsHandler.Record)

			admin := gmfaces.Group("/admin", sessionMiddleware.RequireAdmin())
			{
				admin.GET("/stats", statsHandler.Dashboard)
			}
		}

		api.POST("/upload/image", sessionMiddleware.RequireAdmin(), uploadHandler.UploadImage)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return []string{"http://localhost:3000"}
	}

	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
