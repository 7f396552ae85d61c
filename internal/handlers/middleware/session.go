package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/i18n"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// CurrentUserContextKey é a chave do usuário autenticado no contexto do Gin
const CurrentUserContextKey = "current_user"

// SessionMiddleware valida o cookie de sessão da área administrativa
type SessionMiddleware struct {
	authService *services.AuthService
	cookieName  string
}

// NewSessionMiddleware cria um novo middleware de sessão
func NewSessionMiddleware(authService *services.AuthService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		authService: authService,
		cookieName:  cookieName,
	}
}

// RequireAdmin exige uma sessão válida e coloca o usuário no contexto.
// Sem cookie, cookie expirado ou usuário removido: 401 e aborta a cadeia.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			m.abortUnauthorized(c)
			return
		}

		user, err := m.authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.abortUnauthorized(c)
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// abortUnauthorized responde um problema RFC 7807 traduzido.
// Não usa o pacote dto para evitar ciclo de importação (dto -> middleware).
func (m *SessionMiddleware) abortUnauthorized(c *gin.Context) {
	baseURL := "http://localhost:8080"
	if value, exists := c.Get("base_url"); exists {
		if url, ok := value.(string); ok {
			baseURL = url
		}
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"type":     baseURL + "/problems/unauthorized",
		"title":    translate(c, "error.unauthorized.title"),
		"status":   http.StatusUnauthorized,
		"detail":   translate(c, "error.unauthorized.detail"),
		"instance": c.Request.URL.Path,
	})
}

func translate(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	lang, exists := c.Get(LanguageContextKey)
	langStr, _ := lang.(string)
	if !exists || langStr == "" {
		langStr = service.DefaultLanguage()
	}

	return service.T(langStr, key)
}
