package repositories

import (
	"context"
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

// ViewCount é o resultado do agrupamento de eventos por influenciador
type ViewCount struct {
	InfluencerID string
	Views        int64
}

// AnalyticsRepository define a interface para o log append-only de eventos.
// Não há Update nem Delete: a tabela só cresce.
type AnalyticsRepository interface {
	Create(ctx context.Context, event *entities.AnalyticsEvent) error

	// CountByType conta eventos de um tipo na janela [from, to)
	CountByType(ctx context.Context, eventType string, from, to time.Time) (int64, error)

	// TopViewed agrupa eventos de um tipo por influenciador desde from,
	// ordenado por contagem decrescente, limitado a limit linhas
	TopViewed(ctx context.Context, eventType string, from time.Time, limit int) ([]ViewCount, error)
}
