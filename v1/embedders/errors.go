package embedders

import "errors"

// Validation errors. All are wrapped by ErrInvalidConfig so callers can
// match the whole family with a single errors.Is.
var (
	// ErrInvalidConfig is the root of every client-side validation failure.
	ErrInvalidConfig = errors.New("embedders: invalid embedder config")

	// ErrTemplateFragmentConflict is returned when a config sets both a
	// document template and fragment maps.
	ErrTemplateFragmentConflict = errors.New("embedders: documentTemplate and fragments are mutually exclusive")

	// ErrMissingRestTemplates is returned when a rest-source config lacks
	// request or response templates.
	ErrMissingRestTemplates = errors.New("embedders: rest source requires request and response templates")

	// ErrFragmentsRequireRest is returned when fragments are configured on
	// a source that does not support them.
	ErrFragmentsRequireRest = errors.New("embedders: fragments are only supported by rest sources")

	// ErrInvalidDimensions is returned when dimensions is zero or negative.
	ErrInvalidDimensions = errors.New("embedders: dimensions must be positive")
)

// IsValidationError checks whether the error is a client-side config
// validation failure (as opposed to a server rejection or task failure).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
