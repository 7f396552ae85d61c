package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

// ErrDuplicateSlug sinaliza violação do índice único de slug, para o
// chamador tentar novamente com o próximo sufixo
var ErrDuplicateSlug = errors.New("slug already exists")

// InfluencerRepository define a interface para persistência de influenciadores
type InfluencerRepository interface {
	Create(ctx context.Context, influencer *entities.Influencer) error
	FindByID(ctx context.Context, id string) (*entities.Influencer, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Influencer, error)
	Update(ctx context.Context, influencer *entities.Influencer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters InfluencerFilters) ([]*entities.Influencer, error)

	// SlugExists verifica disponibilidade de slug; excludeID ignora a própria
	// linha durante renomeação (vazio na criação)
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)

	// MaxDisplayOrder retorna o maior display_order atual (0 se vazio)
	MaxDisplayOrder(ctx context.Context) (int, error)

	// SetDisplayOrder reposiciona um perfil; retorna false se o id não existe
	SetDisplayOrder(ctx context.Context, id string, order int) (bool, error)

	// CountPublished conta perfis publicados, opcionalmente só os criados
	// antes do instante dado
	CountPublished(ctx context.Context, createdBefore *time.Time) (int64, error)
}

// InfluencerFilters contém filtros para listagem de influenciadores.
// OnlyPublished ordena por display_order asc + created_at desc (vitrine
// pública); a visão completa ignora a ordenação manual e usa created_at desc.
type InfluencerFilters struct {
	OnlyPublished bool
}
