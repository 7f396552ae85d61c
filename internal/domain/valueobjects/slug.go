package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slug é o identificador URL-safe derivado do nome de exibição
type Slug string

// NewSlug deriva um slug a partir de um texto livre.
// Função total: qualquer entrada produz algum slug, possivelmente vazio.
func NewSlug(text string) Slug {
	s := strings.ToLower(strings.TrimSpace(text))
	s = removeDiacritics(s)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return Slug(s)
}

// WithSuffix retorna o slug com um sufixo numérico de desambiguação.
// Sufixo 0 retorna o slug base.
func (s Slug) WithSuffix(n int) Slug {
	if n <= 0 {
		return s
	}
	return Slug(fmt.Sprintf("%s-%d", s, n))
}

// String retorna o valor do slug
func (s Slug) String() string {
	return string(s)
}

// removeDiacritics remove acentos preservando as letras base (ã -> a, ç -> c)
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
