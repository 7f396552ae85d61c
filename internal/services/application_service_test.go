package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	domainerrors "github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

func newTestApplicationService(notifier *fakeNotifier) (*ApplicationService, *fakeInfluencerRepo) {
	repo := newFakeInfluencerRepo()
	uow := &fakeUnitOfWork{repo: repo}
	influencers := NewInfluencerService(repo, uow, noopLogger{})
	return NewApplicationService(influencers, notifier, noopLogger{}), repo
}

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("candidatura válida entra como PENDING", func(t *testing.T) {
		notifier := &fakeNotifier{}
		service, _ := newTestApplicationService(notifier)

		influencer, err := service.Submit(ctx, baseInput("Maria Silva"))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if influencer.Status != entities.StatusPending {
			t.Errorf("esperava PENDING, obteve '%s'", influencer.Status)
		}
		if len(notifier.calls) != 1 || notifier.calls[0] != influencer.ID {
			t.Errorf("esperava 1 notificação para '%s', obteve %v", influencer.ID, notifier.calls)
		}
	})

	t.Run("status enviado pelo formulário é ignorado", func(t *testing.T) {
		service, _ := newTestApplicationService(&fakeNotifier{})

		input := baseInput("Ana Lima")
		input.Status = string(entities.StatusPublished)

		influencer, err := service.Submit(ctx, input)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if influencer.Status != entities.StatusPending {
			t.Errorf("candidatura não pode se auto-publicar: obteve '%s'", influencer.Status)
		}
	})

	t.Run("quantidade errada de nichos é rejeitada", func(t *testing.T) {
		service, repo := newTestApplicationService(&fakeNotifier{})

		input := baseInput("Maria Silva")
		input.Niche = `{"niches":["Moda","Beleza"],"mainNiche":"Moda"}`

		if _, err := service.Submit(ctx, input); !errors.Is(err, valueobjects.ErrNicheCount) {
			t.Errorf("esperava ErrNicheCount, obteve %v", err)
		}
		if len(repo.byID) != 0 {
			t.Error("candidatura inválida não pode criar perfil")
		}
	})

	t.Run("nicho principal fora da seleção é rejeitado", func(t *testing.T) {
		service, _ := newTestApplicationService(&fakeNotifier{})

		input := baseInput("Maria Silva")
		input.Niche = `{"niches":["Moda","Beleza","Fitness"],"mainNiche":"Games"}`

		if _, err := service.Submit(ctx, input); !errors.Is(err, valueobjects.ErrMainNicheMissing) {
			t.Errorf("esperava ErrMainNicheMissing, obteve %v", err)
		}
	})

	t.Run("nicho em texto puro não passa na validação estrita", func(t *testing.T) {
		service, _ := newTestApplicationService(&fakeNotifier{})

		input := baseInput("Maria Silva")
		input.Niche = "Moda"

		if _, err := service.Submit(ctx, input); !errors.Is(err, valueobjects.ErrNicheCount) {
			t.Errorf("esperava ErrNicheCount, obteve %v", err)
		}
	})

	t.Run("campos obrigatórios ausentes", func(t *testing.T) {
		service, _ := newTestApplicationService(&fakeNotifier{})

		input := baseInput("Maria Silva")
		input.Bio = ""

		if _, err := service.Submit(ctx, input); !errors.Is(err, domainerrors.ErrMissingFields) {
			t.Errorf("esperava ErrMissingFields, obteve %v", err)
		}
	})

	t.Run("falha na notificação não falha a candidatura", func(t *testing.T) {
		notifier := &fakeNotifier{err: errors.New("smtp indisponível")}
		service, repo := newTestApplicationService(notifier)

		influencer, err := service.Submit(ctx, baseInput("Maria Silva"))
		if err != nil {
			t.Fatalf("esperava sucesso mesmo com notificação falhando, obteve %v", err)
		}
		if _, ok := repo.byID[influencer.ID]; !ok {
			t.Error("perfil da candidatura não foi persistido")
		}
	})
}
