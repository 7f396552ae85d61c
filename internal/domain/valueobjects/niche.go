package valueobjects

import (
	"encoding/json"
	"errors"
)

// Códigos de erro da validação estrita do formulário público.
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrNicheCount       = errors.New("error.niche_count")
	ErrMainNicheMissing = errors.New("error.main_niche_missing")
)

// NicheFormat identifica o formato histórico em que a coluna niche foi gravada.
// A coluna acumulou três formatos incompatíveis ao longo da vida do produto.
type NicheFormat int

const (
	// NicheFormatText - texto puro, sem JSON ("Moda")
	NicheFormatText NicheFormat = iota + 1
	// NicheFormatList - array JSON de strings (["Moda","Beleza"])
	NicheFormatList
	// NicheFormatStructured - objeto atual {"niches":[...],"mainNiche":"..."}
	NicheFormatStructured
)

// RequiredNicheCount é o número exato de nichos exigido no formulário público
const RequiredNicheCount = 3

// KnownNiches é a enumeração fixa usada no relatório de distribuição.
// Nichos fora desta lista podem existir nos dados mas não aparecem no relatório.
var KnownNiches = []string{
	"Moda", "Beleza", "Fitness", "Lifestyle", "Gastronomia", "Viagem",
	"Maternidade", "Tecnologia", "Games", "Música", "Humor", "Educação",
	"Saúde", "Negócios",
}

// NicheSelection é a forma canônica da classificação de nichos, decodificada
// uma única vez na fronteira do repositório. Format registra de qual formato
// histórico o valor veio.
type NicheSelection struct {
	Format    NicheFormat `json:"-"`
	Niches    []string    `json:"niches"`
	MainNiche string      `json:"mainNiche"`
}

// DecodeNicheSelection decodifica a coluna niche em qualquer um dos três
// formatos históricos. Função total: nunca retorna erro; entradas que não
// são JSON (ou JSON fora dos formatos conhecidos) viram um nicho único opaco.
func DecodeNicheSelection(raw string) NicheSelection {
	if raw == "" {
		return NicheSelection{Format: NicheFormatText, Niches: []string{}}
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return fallbackNiche(raw)
	}

	switch v := parsed.(type) {
	case map[string]any:
		niches := stringSlice(v["niches"])
		if len(niches) == 0 {
			return fallbackNiche(raw)
		}
		main, _ := v["mainNiche"].(string)
		if main == "" {
			main = niches[0]
		}
		return NicheSelection{Format: NicheFormatStructured, Niches: niches, MainNiche: main}
	case []any:
		niches := stringSlice(parsed)
		if len(niches) == 0 {
			return fallbackNiche(raw)
		}
		return NicheSelection{Format: NicheFormatList, Niches: niches, MainNiche: niches[0]}
	case string:
		return fallbackNiche(v)
	default:
		return fallbackNiche(raw)
	}
}

// Validate aplica as regras do formulário público: exatamente 3 nichos e
// mainNiche entre eles. Só a escrita valida; leituras são sempre tolerantes.
func (n NicheSelection) Validate() error {
	if len(n.Niches) != RequiredNicheCount {
		return ErrNicheCount
	}
	if !n.Contains(n.MainNiche) {
		return ErrMainNicheMissing
	}
	return nil
}

// Contains verifica se um nicho faz parte da seleção
func (n NicheSelection) Contains(niche string) bool {
	for _, item := range n.Niches {
		if item == niche {
			return true
		}
	}
	return false
}

// Encode serializa sempre na forma canônica atual, independentemente do
// formato em que o valor foi lido. Reescritas migram linhas legadas.
func (n NicheSelection) Encode() string {
	canonical := NicheSelection{Niches: n.Niches, MainNiche: n.MainNiche}
	if canonical.Niches == nil {
		canonical.Niches = []string{}
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func fallbackNiche(raw string) NicheSelection {
	return NicheSelection{Format: NicheFormatText, Niches: []string{raw}, MainNiche: raw}
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
