package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// InfluencerModel é o model GORM para perfis do catálogo.
//
// niche, services, portfolio e reviews são colunas texto contendo JSON
// serializado (herança do schema original); a decodificação acontece nos
// conversores deste pacote, nunca nos chamadores.
type InfluencerModel struct {
	ID   string `gorm:"type:uuid;primary_key"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name string `gorm:"type:varchar(255);not null"`

	Photo  *string `gorm:"type:varchar(500)"`
	City   string  `gorm:"type:varchar(255);not null"`
	Bio    string  `gorm:"type:text;not null"`
	Gender string  `gorm:"type:varchar(20);not null;default:OUTRO"`

	Niche string `gorm:"type:text;not null"`

	Followers     *string `gorm:"type:varchar(100)"`
	Reach         *string `gorm:"type:varchar(100)"`
	Engagement    *string `gorm:"type:varchar(100)"`
	Views30Days   *string `gorm:"type:varchar(100)"`
	Reach30Days   *string `gorm:"type:varchar(100)"`
	AverageReels  *string `gorm:"type:varchar(100)"`
	LocalAudience *string `gorm:"type:varchar(500)"`

	PriceMin     *string `gorm:"type:varchar(100)"`
	PriceClient  *string `gorm:"type:varchar(100)"`
	PriceCopart  *string `gorm:"type:varchar(100)"`
	PriceVideo   *string `gorm:"type:varchar(100)"`
	PriceRepost  *string `gorm:"type:varchar(100)"`
	PriceFinal   *string `gorm:"type:varchar(100)"`
	Restrictions *string `gorm:"type:text"`

	Services  string `gorm:"type:text;not null;default:'[]'"`
	Portfolio string `gorm:"type:text;not null;default:'[]'"`
	Reviews   string `gorm:"type:text;not null;default:'[]'"`

	Status       string `gorm:"type:varchar(20);not null;index"`
	DisplayOrder int    `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (InfluencerModel) TableName() string {
	return "influencers"
}

// AnalyticsEventModel é o model GORM para o log append-only de eventos.
// influencer_id não tem foreign key de propósito: perfis apagados mantêm
// seus eventos históricos.
type AnalyticsEventModel struct {
	ID           string            `gorm:"type:uuid;primary_key"`
	EventType    string            `gorm:"type:varchar(100);not null;index"`
	InfluencerID *string           `gorm:"type:uuid;index"`
	Metadata     datatypes.JSONMap `gorm:"type:json"`
	CreatedAt    time.Time         `gorm:"autoCreateTime;index"`
}

func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}

// UserModel é o model GORM para usuários administrativos
type UserModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
