package services

import (
	"context"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	domainerrors "github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
)

// AnalyticsService registra eventos de interação do público.
// Sem deduplicação, rate limit ou batching: cada chamada é um insert.
type AnalyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
	logger        ports.Logger
}

// NewAnalyticsService cria um novo AnalyticsService
func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	logger ports.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

// Record grava um evento. Só falha quando eventType está vazio; influencerId
// não é verificado contra a tabela de perfis.
func (s *AnalyticsService) Record(ctx context.Context, eventType string, influencerID *string, metadata map[string]any) (*entities.AnalyticsEvent, error) {
	if eventType == "" {
		return nil, domainerrors.ErrMissingEventType
	}

	event := &entities.AnalyticsEvent{
		EventType:    eventType,
		InfluencerID: influencerID,
		Metadata:     metadata,
	}

	if err := s.analyticsRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}
