package services

import (
	"context"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	domainerrors "github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// ApplicationService processa candidaturas do formulário público.
// Diferente da criação administrativa, a candidatura valida o formato do
// nicho estritamente e entra sempre como PENDING.
type ApplicationService struct {
	influencers *InfluencerService
	notifier    ports.Notifier
	logger      ports.Logger
}

// NewApplicationService cria um novo ApplicationService
func NewApplicationService(
	influencers *InfluencerService,
	notifier ports.Notifier,
	logger ports.Logger,
) *ApplicationService {
	return &ApplicationService{
		influencers: influencers,
		notifier:    notifier,
		logger:      logger,
	}
}

// Submit valida e registra uma candidatura. O email para a equipe é
// best-effort: falha de notificação não falha a candidatura.
func (s *ApplicationService) Submit(ctx context.Context, input CreateInfluencerInput) (*entities.Influencer, error) {
	if input.Name == "" || input.City == "" || input.Niche == "" || input.Bio == "" || input.Gender == "" {
		return nil, domainerrors.ErrMissingFields
	}

	selection := valueobjects.DecodeNicheSelection(input.Niche)
	if err := selection.Validate(); err != nil {
		return nil, err
	}

	input.Status = string(entities.StatusPending)

	influencer, err := s.influencers.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyNewApplication(ctx, influencer); err != nil {
		s.logger.Warn("application notification failed",
			"influencer_id", influencer.ID,
			"error", err,
		)
	}

	return influencer, nil
}
