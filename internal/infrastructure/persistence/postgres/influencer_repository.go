package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// InfluencerRepository implementa repositories.InfluencerRepository
type InfluencerRepository struct {
	db *gorm.DB
}

// NewInfluencerRepository cria um novo InfluencerRepository
func NewInfluencerRepository(db *gorm.DB) repositories.InfluencerRepository {
	return &InfluencerRepository{db: db}
}

func (r *InfluencerRepository) Create(ctx context.Context, influencer *entities.Influencer) error {
	model := influencerToModel(influencer)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateSlug
		}
		return err
	}

	influencer.ID = model.ID
	influencer.CreatedAt = model.CreatedAt
	influencer.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *InfluencerRepository) FindByID(ctx context.Context, id string) (*entities.Influencer, error) {
	var model InfluencerModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return influencerToEntity(&model), nil
}

func (r *InfluencerRepository) FindBySlug(ctx context.Context, slug string) (*entities.Influencer, error) {
	var model InfluencerModel

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return influencerToEntity(&model), nil
}

func (r *InfluencerRepository) Update(ctx context.Context, influencer *entities.Influencer) error {
	model := influencerToModel(influencer)

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *InfluencerRepository) Delete(ctx context.Context, id string) error {
	// Hard delete; eventos de analytics relacionados permanecem
	db := getDB(ctx, r.db)
	return db.WithContext(ctx).Where("id = ?", id).Delete(&InfluencerModel{}).Error
}

func (r *InfluencerRepository) List(ctx context.Context, filters repositories.InfluencerFilters) ([]*entities.Influencer, error) {
	var models []*InfluencerModel

	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&InfluencerModel{})

	if filters.OnlyPublished {
		query = query.
			Where("status = ?", string(entities.StatusPublished)).
			Order("display_order ASC").
			Order("created_at DESC")
	} else {
		// Visão administrativa ignora a ordenação manual
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Influencer, 0, len(models))
	for _, model := range models {
		result = append(result, influencerToEntity(model))
	}
	return result, nil
}

func (r *InfluencerRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).Model(&InfluencerModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InfluencerRepository) MaxDisplayOrder(ctx context.Context) (int, error) {
	db := getDB(ctx, r.db)

	var max *int
	err := db.WithContext(ctx).
		Model(&InfluencerModel{}).
		Select("MAX(display_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *InfluencerRepository) SetDisplayOrder(ctx context.Context, id string, order int) (bool, error) {
	db := getDB(ctx, r.db)
	result := db.WithContext(ctx).
		Model(&InfluencerModel{}).
		Where("id = ?", id).
		Update("display_order", order)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *InfluencerRepository) CountPublished(ctx context.Context, createdBefore *time.Time) (int64, error) {
	db := getDB(ctx, r.db)
	query := db.WithContext(ctx).
		Model(&InfluencerModel{}).
		Where("status = ?", string(entities.StatusPublished))
	if createdBefore != nil {
		query = query.Where("created_at < ?", *createdBefore)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Conversores: o JSON das colunas texto é decodificado aqui, uma única vez

func influencerToModel(influencer *entities.Influencer) *InfluencerModel {
	return &InfluencerModel{
		ID:            influencer.ID,
		Slug:          influencer.Slug,
		Name:          influencer.Name,
		Photo:         influencer.Photo,
		City:          influencer.City,
		Bio:           influencer.Bio,
		Gender:        string(influencer.Gender),
		Niche:         influencer.Niche.Encode(),
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
		Services:      valueobjects.EncodeList(influencer.Services),
		Portfolio:     valueobjects.EncodeList(influencer.Portfolio),
		Reviews:       valueobjects.EncodeList(influencer.Reviews),
		Status:        string(influencer.Status),
		DisplayOrder:  influencer.DisplayOrder,
		CreatedAt:     influencer.CreatedAt,
		UpdatedAt:     influencer.UpdatedAt,
	}
}

func influencerToEntity(model *InfluencerModel) *entities.Influencer {
	return &entities.Influencer{
		ID:            model.ID,
		Slug:          model.Slug,
		Name:          model.Name,
		Photo:         model.Photo,
		City:          model.City,
		Bio:           model.Bio,
		Gender:        entities.Gender(model.Gender),
		Niche:         valueobjects.DecodeNicheSelection(model.Niche),
		Followers:     model.Followers,
		Reach:         model.Reach,
		Engagement:    model.Engagement,
		Views30Days:   model.Views30Days,
		Reach30Days:   model.Reach30Days,
		AverageReels:  model.AverageReels,
		LocalAudience: model.LocalAudience,
		PriceMin:      model.PriceMin,
		PriceClient:   model.PriceClient,
		PriceCopart:   model.PriceCopart,
		PriceVideo:    model.PriceVideo,
		PriceRepost:   model.PriceRepost,
		PriceFinal:    model.PriceFinal,
		Restrictions:  model.Restrictions,
		Services:      valueobjects.DecodeServiceOfferings(model.Services),
		Portfolio:     valueobjects.DecodePortfolioItems(model.Portfolio),
		Reviews:       valueobjects.DecodeReviews(model.Reviews),
		Status:        entities.Status(model.Status),
		DisplayOrder:  model.DisplayOrder,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
