package dto

import (
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
	"github.com/gmagencia/gmfaces-backend/internal/services"
)

// CreateInfluencerRequest representa a criação administrativa de um perfil.
// A obrigatoriedade de name/city/niche/bio/gender é validada no serviço para
// produzir a mensagem de negócio correta, não no binding.
type CreateInfluencerRequest struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Bio    string `json:"bio"`
	Gender string `json:"gender" binding:"omitempty,gender"`
	Niche  string `json:"niche"`

	Photo *string `json:"photo"`

	Followers     *string `json:"followers"`
	Reach         *string `json:"reach"`
	Engagement    *string `json:"engagement"`
	Views30Days   *string `json:"views30Days"`
	Reach30Days   *string `json:"reach30Days"`
	AverageReels  *string `json:"averageReels"`
	LocalAudience *string `json:"localAudience"`

	PriceMin     *string `json:"priceMin"`
	PriceClient  *string `json:"priceClient"`
	PriceCopart  *string `json:"priceCopart"`
	PriceVideo   *string `json:"priceVideo"`
	PriceRepost  *string `json:"priceRepost"`
	PriceFinal   *string `json:"priceFinal"`
	Restrictions *string `json:"restrictions"`

	Services  *string `json:"services"`
	Portfolio *string `json:"portfolio"`
	Reviews   *string `json:"reviews"`

	Status string `json:"status" binding:"omitempty,status"`
}

// ToInput converte a requisição para o input do serviço
func (r *CreateInfluencerRequest) ToInput() services.CreateInfluencerInput {
	return services.CreateInfluencerInput{
		Name:          r.Name,
		City:          r.City,
		Bio:           r.Bio,
		Gender:        r.Gender,
		Niche:         r.Niche,
		Photo:         r.Photo,
		Followers:     r.Followers,
		Reach:         r.Reach,
		Engagement:    r.Engagement,
		Views30Days:   r.Views30Days,
		Reach30Days:   r.Reach30Days,
		AverageReels:  r.AverageReels,
		LocalAudience: r.LocalAudience,
		PriceMin:      r.PriceMin,
		PriceClient:   r.PriceClient,
		PriceCopart:   r.PriceCopart,
		PriceVideo:    r.PriceVideo,
		PriceRepost:   r.PriceRepost,
		PriceFinal:    r.PriceFinal,
		Restrictions:  r.Restrictions,
		Services:      r.Services,
		Portfolio:     r.Portfolio,
		Reviews:       r.Reviews,
		Status:        r.Status,
	}
}

// UpdateInfluencerRequest representa uma atualização parcial (PATCH).
// Os campos niches/mainNiche que o formulário do cliente envia são artefatos
// do shape do front-end e não existem aqui: a coluna real é a string niche.
type UpdateInfluencerRequest struct {
	Name   *string `json:"name"`
	City   *string `json:"city"`
	Bio    *string `json:"bio"`
	Gender *string `json:"gender" binding:"omitempty,gender"`
	Niche  *string `json:"niche"`

	Photo *string `json:"photo"`

	Followers     *string `json:"followers"`
	Reach         *string `json:"reach"`
	Engagement    *string `json:"engagement"`
	Views30Days   *string `json:"views30Days"`
	Reach30Days   *string `json:"reach30Days"`
	AverageReels  *string `json:"averageReels"`
	LocalAudience *string `json:"localAudience"`

	PriceMin     *string `json:"priceMin"`
	PriceClient  *string `json:"priceClient"`
	PriceCopart  *string `json:"priceCopart"`
	PriceVideo   *string `json:"priceVideo"`
	PriceRepost  *string `json:"priceRepost"`
	PriceFinal   *string `json:"priceFinal"`
	Restrictions *string `json:"restrictions"`

	Services  *string `json:"services"`
	Portfolio *string `json:"portfolio"`
	Reviews   *string `json:"reviews"`

	Status *string `json:"status" binding:"omitempty,status"`
}

// ToInput converte a requisição para o input do serviço
func (r *UpdateInfluencerRequest) ToInput() services.UpdateInfluencerInput {
	return services.UpdateInfluencerInput{
		Name:          r.Name,
		City:          r.City,
		Bio:           r.Bio,
		Gender:        r.Gender,
		Niche:         r.Niche,
		Photo:         r.Photo,
		Followers:     r.Followers,
		Reach:         r.Reach,
		Engagement:    r.Engagement,
		Views30Days:   r.Views30Days,
		Reach30Days:   r.Reach30Days,
		AverageReels:  r.AverageReels,
		LocalAudience: r.LocalAudience,
		PriceMin:      r.PriceMin,
		PriceClient:   r.PriceClient,
		PriceCopart:   r.PriceCopart,
		PriceVideo:    r.PriceVideo,
		PriceRepost:   r.PriceRepost,
		PriceFinal:    r.PriceFinal,
		Restrictions:  r.Restrictions,
		Services:      r.Services,
		Portfolio:     r.Portfolio,
		Reviews:       r.Reviews,
		Status:        r.Status,
	}
}

// ReorderRequest reescreve a ordenação manual da vitrine
type ReorderRequest struct {
	InfluencerIDs []string `json:"influencerIds" binding:"required,min=1"`
}

// ApplicationRequest representa a candidatura do formulário público
type ApplicationRequest struct {
	Name   string `json:"name"`
	City   string `json:"city"`
	Bio    string `json:"bio"`
	Gender string `json:"gender" binding:"omitempty,gender"`
	Niche  string `json:"niche"`

	Photo         *string `json:"photo"`
	Followers     *string `json:"followers"`
	Reach         *string `json:"reach"`
	Engagement    *string `json:"engagement"`
	LocalAudience *string `json:"localAudience"`
}

// ToInput converte a candidatura para o input do serviço
func (r *ApplicationRequest) ToInput() services.CreateInfluencerInput {
	return services.CreateInfluencerInput{
		Name:          r.Name,
		City:          r.City,
		Bio:           r.Bio,
		Gender:        r.Gender,
		Niche:         r.Niche,
		Photo:         r.Photo,
		Followers:     r.Followers,
		Reach:         r.Reach,
		Engagement:    r.Engagement,
		LocalAudience: r.LocalAudience,
	}
}

// NicheResponse é a forma canônica do nicho na API
type NicheResponse struct {
	Niches    []string `json:"niches"`
	MainNiche string   `json:"mainNiche"`
}

// InfluencerResponse representa um perfil na API
type InfluencerResponse struct {
	ID     string  `json:"id"`
	Slug   string  `json:"slug"`
	Name   string  `json:"name"`
	Photo  *string `json:"photo"`
	City   string  `json:"city"`
	Bio    string  `json:"bio"`
	Gender string  `json:"gender"`

	Niche NicheResponse `json:"niche"`

	Followers     *string `json:"followers"`
	Reach         *string `json:"reach"`
	Engagement    *string `json:"engagement"`
	Views30Days   *string `json:"views30Days"`
	Reach30Days   *string `json:"reach30Days"`
	AverageReels  *string `json:"averageReels"`
	LocalAudience *string `json:"localAudience"`

	PriceMin     *string `json:"priceMin"`
	PriceClient  *string `json:"priceClient"`
	PriceCopart  *string `json:"priceCopart"`
	PriceVideo   *string `json:"priceVideo"`
	PriceRepost  *string `json:"priceRepost"`
	PriceFinal   *string `json:"priceFinal"`
	Restrictions *string `json:"restrictions"`

	Services  []valueobjects.ServiceOffering `json:"services"`
	Portfolio []valueobjects.PortfolioItem   `json:"portfolio"`
	Reviews   []valueobjects.Review          `json:"reviews"`

	Status       string    `json:"status"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToInfluencerResponse converte uma entidade para a resposta da API
func ToInfluencerResponse(influencer *entities.Influencer) InfluencerResponse {
	niches := influencer.Niche.Niches
	if niches == nil {
		niches = []string{}
	}

	return InfluencerResponse{
		ID:            influencer.ID,
		Slug:          influencer.Slug,
		Name:          influencer.Name,
		Photo:         influencer.Photo,
		City:          influencer.City,
		Bio:           influencer.Bio,
		Gender:        string(influencer.Gender),
		Niche:         NicheResponse{Niches: niches, MainNiche: influencer.Niche.MainNiche},
		Followers:     influencer.Followers,
		Reach:         influencer.Reach,
		Engagement:    influencer.Engagement,
		Views30Days:   influencer.Views30Days,
		Reach30Days:   influencer.Reach30Days,
		AverageReels:  influencer.AverageReels,
		LocalAudience: influencer.LocalAudience,
		PriceMin:      influencer.PriceMin,
		PriceClient:   influencer.PriceClient,
		PriceCopart:   influencer.PriceCopart,
		PriceVideo:    influencer.PriceVideo,
		PriceRepost:   influencer.PriceRepost,
		PriceFinal:    influencer.PriceFinal,
		Restrictions:  influencer.Restrictions,
		Services:      influencer.Services,
		Portfolio:     influencer.Portfolio,
		Reviews:       influencer.Reviews,
		Status:        string(influencer.Status),
		DisplayOrder:  influencer.DisplayOrder,
		CreatedAt:     influencer.CreatedAt,
	}
}

// ToInfluencerResponses converte uma lista de entidades para a API
func ToInfluencerResponses(influencers []*entities.Influencer) []InfluencerResponse {
	responses := make([]InfluencerResponse, len(influencers))
	for i, influencer := range influencers {
		responses[i] = ToInfluencerResponse(influencer)
	}
	return responses
}
