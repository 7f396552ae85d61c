package entities

import "time"

// Tipos de evento conhecidos. eventType é texto livre no armazenamento;
// estes são os valores que o front-end emite hoje.
const (
	EventProfileView   = "profile_view"
	EventCatalogAccess = "catalog_access"
	EventWhatsappClick = "whatsapp_click"
)

// AnalyticsEvent é um registro append-only de interação do usuário.
// A tabela nunca é atualizada nem apagada, apenas inserida e lida.
type AnalyticsEvent struct {
	ID           string
	EventType    string
	InfluencerID *string
	Metadata     map[string]any
	CreatedAt    time.Time
}
