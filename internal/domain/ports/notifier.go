package ports

import (
	"context"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

// Notifier envia notificações de novas candidaturas à equipe.
// Implementações são best-effort: falha de entrega nunca deve
// propagar para a resposta da requisição que a originou.
type Notifier interface {
	NotifyNewApplication(ctx context.Context, influencer *entities.Influencer) error
}
