package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
)

// respondDomainError traduz um erro de domínio para a resposta HTTP adequada.
// Erros de negócio carregam o próprio código i18n na mensagem.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrInfluencerNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Influenciador"))

	case errs.Is(err, errors.ErrMissingFields),
		errs.Is(err, errors.ErrMissingEventType),
		errs.Is(err, errors.ErrUnknownOrderID),
		errs.Is(err, errors.ErrInvalidImageType),
		errs.Is(err, errors.ErrImageTooLarge),
		errs.Is(err, valueobjects.ErrNicheCount),
		errs.Is(err, valueobjects.ErrMainNicheMissing):
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, err.Error()))

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
	}
}
