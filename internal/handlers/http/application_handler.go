package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// ApplicationHandler lida com o formulário público "Quero ser GM Face"
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler cria um novo ApplicationHandler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Submit recebe uma candidatura pública. O perfil entra como PENDING e a
// notificação por email é melhor-esforço: falha de SMTP não derruba o 201.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.ApplicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	influencer, err := h.applicationService.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      dto.T(c, "application.received"),
		"influencerId": influencer.ID,
	})
}
