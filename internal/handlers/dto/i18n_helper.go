package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/handlers/middleware"
	"github.com/gmagencia/gmfaces-backend/internal/infrastructure/i18n"
)

// T traduz uma chave no contexto da requisição.
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Influenciador"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma detectado para a requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "pt-BR"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "pt-BR"
	}

	return langStr
}
