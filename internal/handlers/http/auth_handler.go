package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/middleware"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// AuthHandler lida com a sessão da área administrativa
type AuthHandler struct {
	authService  *services.AuthService
	cookieName   string
	secureCookie bool
}

// NewAuthHandler cria um novo AuthHandler.
// secureCookie deve ser verdadeiro em produção (cookie apenas via HTTPS).
func NewAuthHandler(authService *services.AuthService, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// Login autentica o administrador e grava o cookie de sessão HTTP-only
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	maxAge := int(h.authService.TokenTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: dto.T(c, "login.success"),
		User:    dto.ToUserResponse(user),
	})
}

// Logout expira o cookie de sessão
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "logout.success")})
}

// Me retorna o usuário da sessão atual (rota protegida pelo middleware)
func (h *AuthHandler) Me(c *gin.Context) {
	value, exists := c.Get(middleware.CurrentUserContextKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, ""))
		return
	}

	user, ok := value.(*entities.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}
