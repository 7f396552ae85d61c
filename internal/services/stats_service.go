package services

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

const (
	// monthlyGoalTarget é a meta fixa de novos perfis por mês
	monthlyGoalTarget = 3
	topViewedLimit    = 3
	engagementWindow  = 30 * 24 * time.Hour
)

var engagementCleaner = regexp.MustCompile(`[^0-9,.]`)

// StatsService agrega as métricas do painel administrativo.
// Contagens e top-N saem de queries agrupadas; distribuição de nichos e
// engajamento médio exigem decodificar colunas texto linha a linha e são
// calculados em memória sobre o conjunto publicado.
type StatsService struct {
	influencerRepo repositories.InfluencerRepository
	analyticsRepo  repositories.AnalyticsRepository
	logger         ports.Logger
	now            func() time.Time
}

// NewStatsService cria um novo StatsService
func NewStatsService(
	influencerRepo repositories.InfluencerRepository,
	analyticsRepo repositories.AnalyticsRepository,
	logger ports.Logger,
) *StatsService {
	return &StatsService{
		influencerRepo: influencerRepo,
		analyticsRepo:  analyticsRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// DashboardStats é o objeto agregado do painel
type DashboardStats struct {
	ActiveInfluencers int64           `json:"activeInfluencers"`
	MonthlyGrowth     int64           `json:"monthlyGrowth"`
	MonthlyGoal       GoalProgress    `json:"monthlyGoal"`
	DominantNiche     NicheShare      `json:"dominantNiche"`
	TopInfluencers    []TopInfluencer `json:"topInfluencers"`
	CatalogEngagement Engagement      `json:"catalogEngagement"`
	AverageEngagement float64         `json:"averageEngagement"`
	NicheDistribution []NicheShare    `json:"nicheDistribution"`
}

// GoalProgress mede a meta mensal de recrutamento
type GoalProgress struct {
	Target   int64   `json:"target"`
	Achieved int64   `json:"achieved"`
	Percent  float64 `json:"percent"`
}

// NicheShare é a participação de um nicho no conjunto publicado
type NicheShare struct {
	Niche   string  `json:"niche"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

// TopInfluencer é um perfil do ranking de visualizações do mês
type TopInfluencer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Photo *string `json:"photo"`
	Views int64   `json:"views"`
}

// Engagement compara as janelas de 30 dias do catálogo
type Engagement struct {
	CatalogAccesses       int64   `json:"catalogAccesses"`
	CatalogGrowthPercent  float64 `json:"catalogGrowthPercent"`
	WhatsappClicks        int64   `json:"whatsappClicks"`
	WhatsappGrowthPercent float64 `json:"whatsappGrowthPercent"`
	ConversionRate        float64 `json:"conversionRate"`
}

// Dashboard recalcula todas as métricas do painel a partir do estado atual.
// Sem cache nem manutenção incremental: aceitável enquanto o catálogo é pequeno.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	totalPublished, err := s.influencerRepo.CountPublished(ctx, nil)
	if err != nil {
		return nil, err
	}
	beforeMonth, err := s.influencerRepo.CountPublished(ctx, &monthStart)
	if err != nil {
		return nil, err
	}

	published, err := s.influencerRepo.List(ctx, repositories.InfluencerFilters{OnlyPublished: true})
	if err != nil {
		return nil, err
	}

	topViewed, err := s.topInfluencers(ctx, monthStart, published)
	if err != nil {
		return nil, err
	}

	engagement, err := s.catalogEngagement(ctx, now)
	if err != nil {
		return nil, err
	}

	achieved := totalPublished - beforeMonth
	goalPercent := float64(achieved) / float64(monthlyGoalTarget) * 100
	if goalPercent > 100 {
		goalPercent = 100
	}

	return &DashboardStats{
		ActiveInfluencers: totalPublished,
		MonthlyGrowth:     achieved,
		MonthlyGoal: GoalProgress{
			Target:   monthlyGoalTarget,
			Achieved: achieved,
			Percent:  goalPercent,
		},
		DominantNiche:     dominantNiche(published),
		TopInfluencers:    topViewed,
		CatalogEngagement: engagement,
		AverageEngagement: averageEngagement(published),
		NicheDistribution: nicheDistribution(published),
	}, nil
}

// topInfluencers junta o ranking de profile_view do mês com os dados de
// exibição dos perfis. Reordena após o join: a ordem do join não preserva
// necessariamente o ranking original.
func (s *StatsService) topInfluencers(ctx context.Context, monthStart time.Time, published []*entities.Influencer) ([]TopInfluencer, error) {
	counts, err := s.analyticsRepo.TopViewed(ctx, entities.EventProfileView, monthStart, topViewedLimit)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entities.Influencer, len(published))
	for _, influencer := range published {
		byID[influencer.ID] = influencer
	}

	top := make([]TopInfluencer, 0, len(counts))
	for _, count := range counts {
		influencer, ok := byID[count.InfluencerID]
		if !ok {
			// Evento de perfil apagado ou despublicado; fica fora do ranking
			continue
		}
		top = append(top, TopInfluencer{
			ID:    influencer.ID,
			Name:  influencer.Name,
			Slug:  influencer.Slug,
			Photo: influencer.Photo,
			Views: count.Views,
		})
	}

	sort.SliceStable(top, func(i, j int) bool { return top[i].Views > top[j].Views })
	return top, nil
}

func (s *StatsService) catalogEngagement(ctx context.Context, now time.Time) (Engagement, error) {
	currentStart := now.Add(-engagementWindow)
	previousStart := now.Add(-2 * engagementWindow)

	accesses, err := s.analyticsRepo.CountByType(ctx, entities.EventCatalogAccess, currentStart, now)
	if err != nil {
		return Engagement{}, err
	}
	previousAccesses, err := s.analyticsRepo.CountByType(ctx, entities.EventCatalogAccess, previousStart, currentStart)
	if err != nil {
		return Engagement{}, err
	}
	clicks, err := s.analyticsRepo.CountByType(ctx, entities.EventWhatsappClick, currentStart, now)
	if err != nil {
		return Engagement{}, err
	}
	previousClicks, err := s.analyticsRepo.CountByType(ctx, entities.EventWhatsappClick, previousStart, currentStart)
	if err != nil {
		return Engagement{}, err
	}

	conversionRate := 0.0
	if accesses > 0 {
		conversionRate = float64(clicks) / float64(accesses) * 100
	}

	return Engagement{
		CatalogAccesses:       accesses,
		CatalogGrowthPercent:  growthPercent(accesses, previousAccesses),
		WhatsappClicks:        clicks,
		WhatsappGrowthPercent: growthPercent(clicks, previousClicks),
		ConversionRate:        conversionRate,
	}, nil
}

// dominantNiche devolve o nicho mais frequente entre os perfis publicados.
// Catálogo vazio devolve o valor zero (nicho "", contagem 0), o estado vazio
// que o painel apresenta.
func dominantNiche(published []*entities.Influencer) NicheShare {
	frequency := make(map[string]int64)
	for _, influencer := range published {
		for _, niche := range influencer.Niche.Niches {
			frequency[niche]++
		}
	}

	var best NicheShare
	for niche, count := range frequency {
		if count > best.Count || (count == best.Count && niche < best.Niche) {
			best = NicheShare{Niche: niche, Count: count}
		}
	}

	if total := int64(len(published)); total > 0 && best.Count > 0 {
		best.Percent = float64(best.Count) / float64(total) * 100
	}
	return best
}

// nicheDistribution cobre a enumeração fixa de 14 nichos conhecidos.
// Nichos fora da lista são invisíveis neste relatório mesmo presentes nos dados.
func nicheDistribution(published []*entities.Influencer) []NicheShare {
	total := int64(len(published))

	distribution := make([]NicheShare, 0, len(valueobjects.KnownNiches))
	for _, known := range valueobjects.KnownNiches {
		var count int64
		for _, influencer := range published {
			if influencer.Niche.Contains(known) {
				count++
			}
		}

		share := NicheShare{Niche: known, Count: count}
		if total > 0 {
			share.Percent = float64(count) / float64(total) * 100
		}
		distribution = append(distribution, share)
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})
	return distribution
}

// averageEngagement converte strings livres ("4,5%", "3.2") em números,
// ignorando silenciosamente o que não for conversível
func averageEngagement(published []*entities.Influencer) float64 {
	var sum float64
	var parsed int

	for _, influencer := range published {
		if influencer.Engagement == nil {
			continue
		}
		value, ok := parseEngagement(*influencer.Engagement)
		if !ok {
			continue
		}
		sum += value
		parsed++
	}

	if parsed == 0 {
		return 0
	}
	return sum / float64(parsed)
}

func parseEngagement(raw string) (float64, bool) {
	cleaned := engagementCleaner.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func growthPercent(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
