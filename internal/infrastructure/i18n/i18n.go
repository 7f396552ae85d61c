package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"text/template"
)

// DefaultLocalesDir é o diretório padrão dos arquivos de tradução
const DefaultLocalesDir = "./internal/infrastructure/i18n/locales"

// Service gerencia traduções e internacionalização.
// Cada arquivo <lang>.json do diretório de locales vira um idioma suportado.
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string // [idioma][chave]mensagem
	defaultLanguage string
}

// NewService carrega os arquivos de tradução de localesDir.
// defaultLang é o idioma de fallback e precisa existir no diretório.
func NewService(localesDir, defaultLang string) (*Service, error) {
	files, err := filepath.Glob(filepath.Join(localesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", localesDir)
	}

	s := &Service{
		translations:    make(map[string]map[string]string, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := filepath.Base(file)
		lang = lang[:len(lang)-len(".json")]

		data, err := os.ReadFile(file) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = messages
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado, com fallback para o idioma
// padrão e, por fim, para a própria chave. Parâmetros são interpolados via
// templates Go ({{.Name}}, {{.Resource}}, ...).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message := s.lookup(lang, key)
	if message == "" {
		message = s.lookup(s.defaultLanguage, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

func (s *Service) lookup(lang, key string) string {
	if messages, ok := s.translations[lang]; ok {
		return messages[key]
	}
	return ""
}

// DefaultLanguage retorna o idioma padrão configurado
func (s *Service) DefaultLanguage() string {
	return s.defaultLanguage
}

// SupportedLanguages retorna a lista de idiomas carregados
func (s *Service) SupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	return langs
}

// IsLanguageSupported verifica se um idioma foi carregado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
