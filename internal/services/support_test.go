package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
)

// Fakes em memória compartilhados pelos testes de serviço.
// Reproduzem o contrato dos repositórios (nil, nil) para não-encontrado e
// ErrDuplicateSlug na violação do índice único de slug.

type noopLogger struct{}

func (noopLogger) Info(string, ...any)       {}
func (noopLogger) Error(string, ...any)      {}
func (noopLogger) Debug(string, ...any)      {}
func (noopLogger) Warn(string, ...any)       {}
func (l noopLogger) With(...any) ports.Logger { return l }

type fakeInfluencerRepo struct {
	byID map[string]*entities.Influencer
	seq  int
	now  time.Time
}

func newFakeInfluencerRepo() *fakeInfluencerRepo {
	return &fakeInfluencerRepo{
		byID: make(map[string]*entities.Influencer),
		now:  time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakeInfluencerRepo) Create(_ context.Context, influencer *entities.Influencer) error {
	for _, existing := range r.byID {
		if existing.Slug == influencer.Slug {
			return repositories.ErrDuplicateSlug
		}
	}
	r.seq++
	influencer.ID = fmt.Sprintf("inf-%d", r.seq)
	if influencer.CreatedAt.IsZero() {
		influencer.CreatedAt = r.now
	}
	copied := *influencer
	r.byID[influencer.ID] = &copied
	return nil
}

func (r *fakeInfluencerRepo) FindByID(_ context.Context, id string) (*entities.Influencer, error) {
	influencer, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *influencer
	return &copied, nil
}

func (r *fakeInfluencerRepo) FindBySlug(_ context.Context, slug string) (*entities.Influencer, error) {
	for _, influencer := range r.byID {
		if influencer.Slug == slug {
			copied := *influencer
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeInfluencerRepo) Update(_ context.Context, influencer *entities.Influencer) error {
	for id, existing := range r.byID {
		if id != influencer.ID && existing.Slug == influencer.Slug {
			return repositories.ErrDuplicateSlug
		}
	}
	copied := *influencer
	r.byID[influencer.ID] = &copied
	return nil
}

func (r *fakeInfluencerRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeInfluencerRepo) List(_ context.Context, filters repositories.InfluencerFilters) ([]*entities.Influencer, error) {
	var result []*entities.Influencer
	for _, influencer := range r.byID {
		if filters.OnlyPublished && !influencer.IsPublished() {
			continue
		}
		copied := *influencer
		result = append(result, &copied)
	}

	if filters.OnlyPublished {
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].DisplayOrder != result[j].DisplayOrder {
				return result[i].DisplayOrder < result[j].DisplayOrder
			}
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *fakeInfluencerRepo) SlugExists(_ context.Context, slug string, excludeID string) (bool, error) {
	for id, influencer := range r.byID {
		if influencer.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInfluencerRepo) MaxDisplayOrder(_ context.Context) (int, error) {
	max := 0
	for _, influencer := range r.byID {
		if influencer.DisplayOrder > max {
			max = influencer.DisplayOrder
		}
	}
	return max, nil
}

func (r *fakeInfluencerRepo) SetDisplayOrder(_ context.Context, id string, order int) (bool, error) {
	influencer, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	influencer.DisplayOrder = order
	return true, nil
}

func (r *fakeInfluencerRepo) CountPublished(_ context.Context, createdBefore *time.Time) (int64, error) {
	var count int64
	for _, influencer := range r.byID {
		if !influencer.IsPublished() {
			continue
		}
		if createdBefore != nil && !influencer.CreatedAt.Before(*createdBefore) {
			continue
		}
		count++
	}
	return count, nil
}

// contendedSlugRepo simula criações concorrentes vencendo a disputa do slug
// em toda tentativa: a checagem diz que o slug está livre, mas o insert (ou
// o update de renomeação) devolve violação do índice único
type contendedSlugRepo struct {
	*fakeInfluencerRepo
}

func (r *contendedSlugRepo) SlugExists(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *contendedSlugRepo) Create(context.Context, *entities.Influencer) error {
	return repositories.ErrDuplicateSlug
}

func (r *contendedSlugRepo) Update(context.Context, *entities.Influencer) error {
	return repositories.ErrDuplicateSlug
}

// fakeUnitOfWork emula rollback restaurando um snapshot do repositório
// quando a função transacional retorna erro
type fakeUnitOfWork struct {
	repo *fakeInfluencerRepo
}

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	snapshot := make(map[string]*entities.Influencer, len(u.repo.byID))
	for id, influencer := range u.repo.byID {
		copied := *influencer
		snapshot[id] = &copied
	}

	if err := fn(ctx); err != nil {
		u.repo.byID = snapshot
		return err
	}
	return nil
}

type fakeAnalyticsRepo struct {
	events []*entities.AnalyticsEvent
	seq    int
}

func (r *fakeAnalyticsRepo) Create(_ context.Context, event *entities.AnalyticsEvent) error {
	r.seq++
	event.ID = fmt.Sprintf("evt-%d", r.seq)
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	copied := *event
	r.events = append(r.events, &copied)
	return nil
}

func (r *fakeAnalyticsRepo) CountByType(_ context.Context, eventType string, from, to time.Time) (int64, error) {
	var count int64
	for _, event := range r.events {
		if event.EventType != eventType {
			continue
		}
		if event.CreatedAt.Before(from) || !event.CreatedAt.Before(to) {
			continue
		}
		count++
	}
	return count, nil
}

func (r *fakeAnalyticsRepo) TopViewed(_ context.Context, eventType string, from time.Time, limit int) ([]repositories.ViewCount, error) {
	counts := make(map[string]int64)
	for _, event := range r.events {
		if event.EventType != eventType || event.InfluencerID == nil {
			continue
		}
		if event.CreatedAt.Before(from) {
			continue
		}
		counts[*event.InfluencerID]++
	}

	result := make([]repositories.ViewCount, 0, len(counts))
	for id, views := range counts {
		result = append(result, repositories.ViewCount{InfluencerID: id, Views: views})
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Views > result[j].Views })

	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeUserRepo struct {
	byID map[string]*entities.User
	seq  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	r.seq++
	user.ID = fmt.Sprintf("usr-%d", r.seq)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	copied := *user
	r.byID[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.byID {
		if user.Email.String() == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeNotifier struct {
	calls []string
	err   error
}

func (n *fakeNotifier) NotifyNewApplication(_ context.Context, influencer *entities.Influencer) error {
	n.calls = append(n.calls, influencer.ID)
	return n.err
}
