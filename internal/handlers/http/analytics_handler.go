package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// AnalyticsHandler lida com a gravação de eventos de uso do site
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler cria um novo AnalyticsHandler
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Record grava um evento append-only enviado pelo front-end
func (h *AnalyticsHandler) Record(c *gin.Context) {
	var req dto.RecordEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	event, err := h.analyticsService.Record(c.Request.Context(), req.EventType, req.InfluencerID, req.Metadata)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordEventResponse{ID: event.ID})
}
