package dto

// RecordEventRequest representa um evento fire-and-forget do front-end.
// A obrigatoriedade de eventType é validada no serviço.
type RecordEventRequest struct {
	EventType    string         `json:"eventType"`
	InfluencerID *string        `json:"influencerId"`
	Metadata     map[string]any `json:"metadata"`
}

// RecordEventResponse confirma a gravação do evento
type RecordEventResponse struct {
	ID string `json:"id"`
}

// UploadResponse retorna a URL relativa da imagem gravada
type UploadResponse struct {
	URL string `json:"url"`
}
