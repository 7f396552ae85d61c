package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// StatsHandler lida com o dashboard administrativo
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler cria um novo StatsHandler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Dashboard retorna as métricas agregadas do catálogo
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
