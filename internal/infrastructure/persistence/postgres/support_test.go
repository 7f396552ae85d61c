package postgres

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// setupTestDB abre um banco sqlite descartável com a mesma configuração
// relevante da conexão real (TranslateError para o retry de slug)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite de teste: %v", err)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("falha ao migrar schema de teste: %v", err)
	}
	return db
}

func testInfluencer(name, slug string, status entities.Status) *entities.Influencer {
	return &entities.Influencer{
		Name:   name,
		Slug:   slug,
		City:   "Goiânia",
		Bio:    "bio",
		Gender: entities.GenderFemale,
		Niche: valueobjects.NicheSelection{
			Niches:    []string{"Moda", "Beleza", "Fitness"},
			MainNiche: "Moda",
		},
		Status: status,
	}
}

// seedEventAt insere um evento com created_at controlado, contornando o
// autoCreateTime do model
func seedEventAt(t *testing.T, db *gorm.DB, eventType string, influencerID *string, createdAt time.Time) {
	t.Helper()

	model := &AnalyticsEventModel{
		ID:           uuid.NewString(),
		EventType:    eventType,
		InfluencerID: influencerID,
		CreatedAt:    createdAt,
	}
	if err := db.Create(model).Error; err != nil {
		t.Fatalf("seed de evento falhou: %v", err)
	}
}
