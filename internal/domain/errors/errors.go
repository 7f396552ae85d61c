package errors

import "errors"

// Códigos de erro de negócio (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrInfluencerNotFound = errors.New("error.influencer_not_found")
	ErrMissingFields      = errors.New("error.missing_fields")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrMissingEventType   = errors.New("error.missing_event_type")
	ErrUnknownOrderID     = errors.New("error.unknown_order_id")
	ErrInvalidImageType   = errors.New("error.invalid_image_type")
	ErrImageTooLarge      = errors.New("error.image_too_large")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// O domínio base vem de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)
