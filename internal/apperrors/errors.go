package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service layer. Handlers translate these into
// HTTP status codes; nothing below the handler layer knows about HTTP.
var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrGeneration   = errors.New("content generation failed")
)

// ValidationError reports a missing or invalid field on a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Generation wraps cause into the generation-failure sentinel so callers
// can match it with errors.Is while operators still see the root cause.
func Generation(cause error) error {
	return fmt.Errorf("%w: %v", ErrGeneration, cause)
}
