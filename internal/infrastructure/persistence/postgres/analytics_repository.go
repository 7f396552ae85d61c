package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/repositories"
)

// AnalyticsRepository implementa repositories.AnalyticsRepository
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository cria um novo AnalyticsRepository
func NewAnalyticsRepository(db *gorm.DB) repositories.AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event *entities.AnalyticsEvent) error {
	model := &AnalyticsEventModel{
		ID:           event.ID,
		EventType:    event.EventType,
		InfluencerID: event.InfluencerID,
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	if event.Metadata != nil {
		model.Metadata = datatypes.JSONMap(event.Metadata)
	}

	db := getDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	event.ID = model.ID
	event.CreatedAt = model.CreatedAt
	return nil
}

func (r *AnalyticsRepository) CountByType(ctx context.Context, eventType string, from, to time.Time) (int64, error) {
	db := getDB(ctx, r.db)

	var count int64
	err := db.WithContext(ctx).
		Model(&AnalyticsEventModel{}).
		Where("event_type = ? AND created_at >= ? AND created_at < ?", eventType, from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AnalyticsRepository) TopViewed(ctx context.Context, eventType string, from time.Time, limit int) ([]repositories.ViewCount, error) {
	db := getDB(ctx, r.db)

	var rows []repositories.ViewCount
	err := db.WithContext(ctx).
		Model(&AnalyticsEventModel{}).
		Select("influencer_id AS influencer_id, COUNT(*) AS views").
		Where("event_type = ? AND created_at >= ? AND influencer_id IS NOT NULL", eventType, from).
		Group("influencer_id").
		Order("views DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
