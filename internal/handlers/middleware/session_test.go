package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

const sessionCookie = "gm_session"

type noopLogger struct{}

func (noopLogger) Info(string, ...any)        {}
func (noopLogger) Error(string, ...any)       {}
func (noopLogger) Debug(string, ...any)       {}
func (noopLogger) Warn(string, ...any)        {}
func (l noopLogger) With(...any) ports.Logger { return l }

type stubUserRepo struct {
	users map[string]*entities.User
}

func (r *stubUserRepo) Create(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func setupSession(t *testing.T) (*services.AuthService, *stubUserRepo, string) {
	t.Helper()

	email, err := valueobjects.NewEmail("admin@gmagencia.com.br")
	if err != nil {
		t.Fatalf("email de teste inválido: %v", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash de teste falhou: %v", err)
	}

	repo := &stubUserRepo{users: map[string]*entities.User{
		"u1": {
			ID:           "u1",
			Email:        email,
			Name:         "GM Admin",
			PasswordHash: string(hash),
			Role:         entities.RoleAdmin,
		},
	}}

	authService := services.NewAuthService(repo, noopLogger{}, "segredo-de-teste", 7)

	_, token, err := authService.Login(context.Background(), "admin@gmagencia.com.br", "senha-forte")
	if err != nil {
		t.Fatalf("login de teste falhou: %v", err)
	}

	return authService, repo, token
}

func sessionRouter(authService *services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protegido", NewSessionMiddleware(authService, sessionCookie).RequireAdmin(), func(c *gin.Context) {
		value, _ := c.Get(CurrentUserContextKey)
		user := value.(*entities.User)
		c.JSON(http.StatusOK, gin.H{"email": user.Email.String()})
	})
	return router
}

func TestSessionMiddleware_RequireAdmin(t *testing.T) {
	t.Run("sem cookie retorna 401 em formato RFC 7807", func(t *testing.T) {
		authService, _, _ := setupSession(t)
		router := sessionRouter(authService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/protegido", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava status 401, obteve %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "/problems/unauthorized") {
			t.Errorf("tipo do problema ausente: %s", w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"instance":"/protegido"`) {
			t.Errorf("instance ausente: %s", w.Body.String())
		}
	})

	t.Run("cookie válido libera a rota e expõe o usuário", func(t *testing.T) {
		authService, _, token := setupSession(t)
		router := sessionRouter(authService)

		req := httptest.NewRequest("GET", "/protegido", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("esperava status 200, obteve %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "admin@gmagencia.com.br") {
			t.Errorf("usuário do contexto ausente: %s", w.Body.String())
		}
	})

	t.Run("token adulterado retorna 401", func(t *testing.T) {
		authService, _, token := setupSession(t)
		router := sessionRouter(authService)

		req := httptest.NewRequest("GET", "/protegido", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token + "x"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("usuário removido depois do login retorna 401", func(t *testing.T) {
		authService, repo, token := setupSession(t)
		router := sessionRouter(authService)
		delete(repo.users, "u1")

		req := httptest.NewRequest("GET", "/protegido", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava status 401, obteve %d", w.Code)
		}
	})

	t.Run("sem i18n no contexto responde com a própria chave", func(t *testing.T) {
		authService, _, _ := setupSession(t)
		router := sessionRouter(authService)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/protegido", nil))

		if !strings.Contains(w.Body.String(), "error.unauthorized.title") {
			t.Errorf("fallback para chave ausente: %s", w.Body.String())
		}
	})
}
