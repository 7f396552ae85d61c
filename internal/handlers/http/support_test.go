package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/middleware"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/i18n"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/persistence/postgres"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/storage"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

const (
	testCookieName = "gm_session"
	testSecret     = "segredo-de-teste"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

// spyNotifier registra as notificações de candidatura
type spyNotifier struct {
	calls int
	err   error
}

func (n *spyNotifier) NotifyNewApplication(_ context.Context, _ *entities.Influencer) error {
	n.calls++
	return n.err
}

// testApp monta a aplicação completa sobre um sqlite descartável,
// com as mesmas rotas e middlewares do binário real
type testApp struct {
	router      *gin.Engine
	db          *gorm.DB
	auth        *services.AuthService
	influencers *services.InfluencerService
	notifier    *spyNotifier
	uploadsDir  string
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite de teste: %v", err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	i18nService := setupTestI18n(t)
	log := noopLogger{}

	influencerRepo := postgres.NewInfluencerRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)
	userRepo := postgres.NewUserRepository(db)
	uow := postgres.NewUnitOfWork(db)

	notifier := &spyNotifier{}

	influencerService := services.NewInfluencerService(influencerRepo, uow, log)
	applicationService := services.NewApplicationService(influencerService, notifier, log)
	analyticsService := services.NewAnalyticsService(analyticsRepo, log)
	statsService := services.NewStatsService(influencerRepo, analyticsRepo, log)
	authService := services.NewAuthService(userRepo, log, testSecret, 7)

	if err := authService.EnsureAdminUser(context.Background(), "admin@gmagencia.com.br", "senha-forte", "GM Admin"); err != nil {
		t.Fatalf("bootstrap do admin falhou: %v", err)
	}

	uploadsDir := t.TempDir()
	fileStorage, err := storage.NewLocalStorage(uploadsDir)
	if err != nil {
		t.Fatalf("storage de teste falhou: %v", err)
	}

	influencerHandler := NewInfluencerHandler(influencerService)
	applicationHandler := NewApplicationHandler(applicationService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	statsHandler := NewStatsHandler(statsService)
	authHandler := NewAuthHandler(authService, testCookieName, false)
	uploadHandler := NewUploadHandler(fileStorage, log, 1024*1024)

	sessionMiddleware := middleware.NewSessionMiddleware(authService, testCookieName)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("base_url", "http://localhost:8080")
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())

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

	return &testApp{
		router:      router,
		db:          db,
		auth:        authService,
		influencers: influencerService,
		notifier:    notifier,
		uploadsDir:  uploadsDir,
	}
}

// setupTestI18n grava um conjunto mínimo de locales com as mesmas strings
// de produção que os testes verificam
func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	tmpDir := t.TempDir()

	ptContent := `{
  "error.validation.title": "Erro de validação",
  "error.validation.detail": "Um ou mais campos são inválidos",
  "error.not_found.title": "Não encontrado",
  "error.not_found.detail": "{{.Resource}} não encontrado",
  "error.unauthorized.title": "Não autorizado",
  "error.unauthorized.detail": "Sessão ausente ou inválida",
  "error.unauthorized": "Sessão ausente ou inválida",
  "error.internal.title": "Erro interno",
  "error.internal.detail": "Ocorreu um erro inesperado. Tente novamente.",
  "error.missing_fields": "Preencha todos os campos obrigatórios: nome, cidade, nicho, bio e gênero.",
  "error.invalid_credentials": "Email ou senha inválidos",
  "error.missing_event_type": "O tipo de evento é obrigatório",
  "error.unknown_order_id": "Um ou mais influenciadores da ordenação não existem",
  "error.niche_count": "Selecione exatamente 3 nichos principais.",
  "error.main_niche_missing": "O nicho principal deve estar entre os nichos selecionados.",
  "error.invalid_image_type": "Formato de imagem não suportado. Envie JPEG, PNG ou WebP.",
  "error.image_too_large": "A imagem excede o tamanho máximo de 5MB.",
  "login.success": "Login realizado com sucesso",
  "logout.success": "Logout realizado com sucesso",
  "application.received": "Candidatura recebida com sucesso! Entraremos em contato em breve."
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create pt-BR.json: %v", err)
	}

	service, err := i18n.NewService(tmpDir, "pt-BR")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}
	return service
}

// doJSON executa uma requisição JSON contra o router de teste
func (app *testApp) doJSON(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	return w
}

// loginCookie autentica o admin bootstrap e devolve o cookie de sessão
func (app *testApp) loginCookie(t *testing.T) *http.Cookie {
	t.Helper()

	w := app.doJSON("POST", "/api/auth/login", `{"email":"admin@gmagencia.com.br","password":"senha-forte"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login de teste falhou com status %d: %s", w.Code, w.Body.String())
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("cookie de sessão não foi emitido")
	return nil
}
