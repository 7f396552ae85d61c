package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	domainerrors "github.com/gmagencia/gmfaces-backend/internal/domain/errors"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// maxSlugRetries limita o retry de sufixo quando criações concorrentes de
// nomes idênticos disputam o índice único
const maxSlugRetries = 10

// InfluencerService contém a lógica de negócio do catálogo
type InfluencerService struct {
	influencerRepo repositories.InfluencerRepository
	uow            ports.UnitOfWork
	logger         ports.Logger
}

// NewInfluencerService cria um novo InfluencerService
func NewInfluencerService(
	influencerRepo repositories.InfluencerRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *InfluencerService {
	return &InfluencerService{
		influencerRepo: influencerRepo,
		uow:            uow,
		logger:         logger,
	}
}

// CreateInfluencerInput representa os dados para criar um perfil.
// Campos *string distinguem "não informado" (nil) de "informado vazio" ("").
type CreateInfluencerInput struct {
	Name   string
	City   string
	Bio    string
	Gender string
	Niche  string // qualquer um dos três formatos históricos

	Photo *string

	Followers     *string
	Reach         *string
	Engagement    *string
	Views30Days   *string
	Reach30Days   *string
	AverageReels  *string
	LocalAudience *string

	PriceMin     *string
	PriceClient  *string
	PriceCopart  *string
	PriceVideo   *string
	PriceRepost  *string
	PriceFinal   *string
	Restrictions *string

	Services  *string // JSON serializado, decodificado defensivamente
	Portfolio *string
	Reviews   *string

	Status string // vazio = PUBLISHED
}

// List retorna os perfis do catálogo. all=false devolve apenas publicados na
// ordenação manual da vitrine; all=true devolve tudo por data de criação.
func (s *InfluencerService) List(ctx context.Context, all bool) ([]*entities.Influencer, error) {
	return s.influencerRepo.List(ctx, repositories.InfluencerFilters{OnlyPublished: !all})
}

// Get busca um perfil por id. Sem all, perfis não publicados são tratados
// como inexistentes (máscara de visibilidade, não ausência no armazenamento).
func (s *InfluencerService) Get(ctx context.Context, id string, all bool) (*entities.Influencer, error) {
	influencer, err := s.influencerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyVisibility(influencer, all)
}

// GetBySlug busca um perfil pelo slug, com a mesma máscara de visibilidade
func (s *InfluencerService) GetBySlug(ctx context.Context, slug string, all bool) (*entities.Influencer, error) {
	influencer, err := s.influencerRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.applyVisibility(influencer, all)
}

func (s *InfluencerService) applyVisibility(influencer *entities.Influencer, all bool) (*entities.Influencer, error) {
	if influencer == nil {
		return nil, domainerrors.ErrInfluencerNotFound
	}
	if !all && !influencer.IsPublished() {
		return nil, domainerrors.ErrInfluencerNotFound
	}
	return influencer, nil
}

// Create cria um novo perfil com slug único e display_order no fim da fila
func (s *InfluencerService) Create(ctx context.Context, input CreateInfluencerInput) (*entities.Influencer, error) {
	if input.Name == "" || input.City == "" || input.Niche == "" || input.Bio == "" || input.Gender == "" {
		return nil, domainerrors.ErrMissingFields
	}

	gender := entities.Gender(input.Gender)
	if !entities.ValidGender(gender) {
		gender = entities.GenderOther
	}

	status := entities.Status(input.Status)
	if !entities.ValidStatus(status) {
		status = entities.StatusPublished
	}

	maxOrder, err := s.influencerRepo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, err
	}

	influencer := &entities.Influencer{
		Name:          input.Name,
		City:          input.City,
		Bio:           input.Bio,
		Gender:        gender,
		Niche:         valueobjects.DecodeNicheSelection(input.Niche),
		Photo:         input.Photo,
		Followers:     input.Followers,
		Reach:         input.Reach,
		Engagement:    input.Engagement,
		Views30Days:   input.Views30Days,
		Reach30Days:   input.Reach30Days,
		AverageReels:  input.AverageReels,
		LocalAudience: input.LocalAudience,
		PriceMin:      input.PriceMin,
		PriceClient:   input.PriceClient,
		PriceCopart:   input.PriceCopart,
		PriceVideo:    input.PriceVideo,
		PriceRepost:   input.PriceRepost,
		PriceFinal:    input.PriceFinal,
		Restrictions:  input.Restrictions,
		Services:      decodeOptionalServices(input.Services),
		Portfolio:     decodeOptionalPortfolio(input.Portfolio),
		Reviews:       decodeOptionalReviews(input.Reviews),
		Status:        status,
		DisplayOrder:  maxOrder + 1,
	}

	slug, err := s.availableSlug(ctx, input.Name, "")
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxSlugRetries; attempt++ {
		influencer.Slug = slug
		err = s.influencerRepo.Create(ctx, influencer)
		if err == nil {
			s.logger.Info("influencer created",
				"id", influencer.ID,
				"slug", influencer.Slug,
				"status", influencer.Status,
			)
			return influencer, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateSlug) {
			return nil, err
		}
		// Criação concorrente ganhou o slug entre a checagem e o insert
		slug, err = s.availableSlug(ctx, input.Name, "")
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("slug em disputa para %q: %w", input.Name, repositories.ErrDuplicateSlug)
}

// UpdateInfluencerInput representa uma atualização parcial; nil = não alterar
type UpdateInfluencerInput struct {
	Name   *string
	City   *string
	Bio    *string
	Gender *string
	Niche  *string

	Photo *string

	Followers     *string
	Reach         *string
	Engagement    *string
	Views30Days   *string
	Reach30Days   *string
	AverageReels  *string
	LocalAudience *string

	PriceMin     *string
	PriceClient  *string
	PriceCopart  *string
	PriceVideo   *string
	PriceRepost  *string
	PriceFinal   *string
	Restrictions *string

	Services  *string
	Portfolio *string
	Reviews   *string

	Status *string
}

// Update aplica uma atualização parcial. O slug só é recalculado quando o
// nome muda, excluindo a própria linha da checagem de colisão.
func (s *InfluencerService) Update(ctx context.Context, id string, input UpdateInfluencerInput) (*entities.Influencer, error) {
	influencer, err := s.influencerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if influencer == nil {
		return nil, domainerrors.ErrInfluencerNotFound
	}

	renamed := input.Name != nil && *input.Name != "" && *input.Name != influencer.Name
	if renamed {
		influencer.Name = *input.Name
	}

	if input.City != nil {
		influencer.City = *input.City
	}
	if input.Bio != nil {
		influencer.Bio = *input.Bio
	}
	if input.Gender != nil && entities.ValidGender(entities.Gender(*input.Gender)) {
		influencer.Gender = entities.Gender(*input.Gender)
	}
	if input.Niche != nil {
		influencer.Niche = valueobjects.DecodeNicheSelection(*input.Niche)
	}
	if input.Photo != nil {
		influencer.Photo = input.Photo
	}
	if input.Followers != nil {
		influencer.Followers = input.Followers
	}
	if input.Reach != nil {
		influencer.Reach = input.Reach
	}
	if input.Engagement != nil {
		influencer.Engagement = input.Engagement
	}
	if input.Views30Days != nil {
		influencer.Views30Days = input.Views30Days
	}
	if input.Reach30Days != nil {
		influencer.Reach30Days = input.Reach30Days
	}
	if input.AverageReels != nil {
		influencer.AverageReels = input.AverageReels
	}
	if input.LocalAudience != nil {
		influencer.LocalAudience = input.LocalAudience
	}
	if input.PriceMin != nil {
		influencer.PriceMin = input.PriceMin
	}
	if input.PriceClient != nil {
		influencer.PriceClient = input.PriceClient
	}
	if input.PriceCopart != nil {
		influencer.PriceCopart = input.PriceCopart
	}
	if input.PriceVideo != nil {
		influencer.PriceVideo = input.PriceVideo
	}
	if input.PriceRepost != nil {
		influencer.PriceRepost = input.PriceRepost
	}
	if input.PriceFinal != nil {
		influencer.PriceFinal = input.PriceFinal
	}
	if input.Restrictions != nil {
		influencer.Restrictions = input.Restrictions
	}
	if input.Services != nil {
		influencer.Services = valueobjects.DecodeServiceOfferings(*input.Services)
	}
	if input.Portfolio != nil {
		influencer.Portfolio = valueobjects.DecodePortfolioItems(*input.Portfolio)
	}
	if input.Reviews != nil {
		influencer.Reviews = valueobjects.DecodeReviews(*input.Reviews)
	}
	if input.Status != nil && entities.ValidStatus(entities.Status(*input.Status)) {
		influencer.Status = entities.Status(*input.Status)
	}

	if !renamed {
		if err := s.influencerRepo.Update(ctx, influencer); err != nil {
			return nil, err
		}
		return influencer, nil
	}

	slug, err := s.availableSlug(ctx, influencer.Name, influencer.ID)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < maxSlugRetries; attempt++ {
		influencer.Slug = slug
		err = s.influencerRepo.Update(ctx, influencer)
		if err == nil {
			return influencer, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateSlug) {
			return nil, err
		}
		slug, err = s.availableSlug(ctx, influencer.Name, influencer.ID)
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("slug em disputa para %q: %w", influencer.Name, repositories.ErrDuplicateSlug)
}

// Reorder reescreve display_order para a posição 1-based de cada id, em uma
// única transação: um id desconhecido desfaz o lote inteiro.
func (s *InfluencerService) Reorder(ctx context.Context, ids []string) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		for position, id := range ids {
			found, err := s.influencerRepo.SetDisplayOrder(txCtx, id, position+1)
			if err != nil {
				return err
			}
			if !found {
				return domainerrors.ErrUnknownOrderID
			}
		}
		return nil
	})
}

// Delete remove um perfil definitivamente. Eventos de analytics relacionados
// permanecem, apontando para um id que não existe mais.
func (s *InfluencerService) Delete(ctx context.Context, id string) error {
	influencer, err := s.influencerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if influencer == nil {
		return domainerrors.ErrInfluencerNotFound
	}

	if err := s.influencerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("influencer deleted", "id", id, "slug", influencer.Slug)
	return nil
}

// availableSlug calcula o primeiro slug livre: base, base-1, base-2, ...
func (s *InfluencerService) availableSlug(ctx context.Context, name, excludeID string) (string, error) {
	base := valueobjects.NewSlug(name)
	for n := 0; ; n++ {
		candidate := base.WithSuffix(n).String()
		exists, err := s.influencerRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func decodeOptionalServices(raw *string) []valueobjects.ServiceOffering {
	if raw == nil {
		return []valueobjects.ServiceOffering{}
	}
	return valueobjects.DecodeServiceOfferings(*raw)
}

func decodeOptionalPortfolio(raw *string) []valueobjects.PortfolioItem {
	if raw == nil {
		return []valueobjects.PortfolioItem{}
	}
	return valueobjects.DecodePortfolioItems(*raw)
}

func decodeOptionalReviews(raw *string) []valueobjects.Review {
	if raw == nil {
		return []valueobjects.Review{}
	}
	return valueobjects.DecodeReviews(*raw)
}
