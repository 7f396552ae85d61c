package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmagencia/gmfaces-backend/internal/handlers/dto"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// InfluencerHandler lida com requisições HTTP do catálogo de influenciadores
type InfluencerHandler struct {
	influencerService *services.InfluencerService
}

// NewInfluencerHandler cria um novo InfluencerHandler
func NewInfluencerHandler(influencerService *services.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{
		influencerService: influencerService,
	}
}

// List lista influenciadores. Por padrão retorna apenas perfis publicados
// ordenados pela vitrine; ?all=true inclui pendentes e inativos.
func (h *InfluencerHandler) List(c *gin.Context) {
	all := c.Query("all") == "true"

	influencers, err := h.influencerService.List(c.Request.Context(), all)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInfluencerResponses(influencers))
}

// Get busca um influenciador por ID
func (h *InfluencerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	all := c.Query("all") == "true"

	influencer, err := h.influencerService.Get(c.Request.Context(), id, all)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInfluencerResponse(influencer))
}

// GetBySlug busca um influenciador pelo slug da URL pública
func (h *InfluencerHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	all := c.Query("all") == "true"

	influencer, err := h.influencerService.GetBySlug(c.Request.Context(), slug, all)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInfluencerResponse(influencer))
}

// Create cria um novo influenciador pela área administrativa
func (h *InfluencerHandler) Create(c *gin.Context) {
	var req dto.CreateInfluencerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	influencer, err := h.influencerService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInfluencerResponse(influencer))
}

// Update aplica uma atualização parcial a um influenciador
func (h *InfluencerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	influencer, err := h.influencerService.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInfluencerResponse(influencer))
}

// Delete remove um influenciador definitivamente
func (h *InfluencerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.influencerService.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Influenciador removido"})
}

// Reorder reescreve a ordenação manual da vitrine.
// A posição no array vira displayOrder (1-based), em uma única transação.
func (h *InfluencerHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, nil))
		return
	}

	if err := h.influencerService.Reorder(c.Request.Context(), req.InfluencerIDs); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ordenação atualizada"})
}
