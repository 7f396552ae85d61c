package entities

import (
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// Status representa o ciclo de vida de um perfil no catálogo
type Status string

const (
	// StatusPending - candidatura recebida pelo formulário público, aguardando revisão
	StatusPending Status = "PENDING"
	// StatusPublished - visível no catálogo público
	StatusPublished Status = "PUBLISHED"
	// StatusInactive - removido do catálogo sem apagar o histórico
	StatusInactive Status = "INACTIVE"
)

// Gender representa o gênero declarado no perfil
type Gender string

const (
	GenderFemale Gender = "MULHER"
	GenderMale   Gender = "HOMEM"
	GenderOther  Gender = "OUTRO"
)

// ValidGender verifica se o valor pertence ao enum
func ValidGender(g Gender) bool {
	return g == GenderFemale || g == GenderMale || g == GenderOther
}

// ValidStatus verifica se o valor pertence ao enum
func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusPublished || s == StatusInactive
}

// Influencer representa um perfil do catálogo GM Faces.
//
// As métricas (followers, reach, ...) e os campos comerciais (priceMin, ...)
// são texto livre preenchido pela equipe, não colunas numéricas. Campos nil
// significam "nunca informado"; string vazia significa "informado como vazio".
type Influencer struct {
	ID   string
	Slug string
	Name string

	Photo  *string
	City   string
	Bio    string
	Gender Gender

	Niche valueobjects.NicheSelection

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

	Services  []valueobjects.ServiceOffering
	Portfolio []valueobjects.PortfolioItem
	Reviews   []valueobjects.Review

	Status       Status
	DisplayOrder int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublished verifica se o perfil está visível no catálogo público
func (i *Influencer) IsPublished() bool {
	return i.Status == StatusPublished
}
