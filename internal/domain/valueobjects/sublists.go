package valueobjects

import "encoding/json"

// Sub-listas estruturadas gravadas como JSON serializado em colunas texto
// (services, portfolio, reviews). A decodificação é sempre defensiva: uma
// coluna corrompida vira lista vazia, nunca um erro para o chamador.

// ServiceOffering é um serviço oferecido pelo influenciador
type ServiceOffering struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// PortfolioItem é um trabalho anterior exibido no perfil
type PortfolioItem struct {
	Title     string `json:"title,omitempty"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Review é um depoimento de cliente
type Review struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating int    `json:"rating,omitempty"`
}

// DecodeServiceOfferings decodifica a coluna services
func DecodeServiceOfferings(raw string) []ServiceOffering {
	return decodeList[ServiceOffering](raw)
}

// DecodePortfolioItems decodifica a coluna portfolio
func DecodePortfolioItems(raw string) []PortfolioItem {
	return decodeList[PortfolioItem](raw)
}

// DecodeReviews decodifica a coluna reviews
func DecodeReviews(raw string) []Review {
	return decodeList[Review](raw)
}

// EncodeList serializa uma sub-lista de volta para a coluna texto
func EncodeList[T any](items []T) string {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeList[T any](raw string) []T {
	if raw == "" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []T{}
	}
	return items
}
