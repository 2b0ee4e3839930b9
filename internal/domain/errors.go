package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap them with %w and test with errors.Is.
var (
	// ErrInvalidRequest is returned when a search request fails validation.
	// Such requests never reach the flight engine.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDownstreamFailure is returned when the flight engine fails to answer.
	ErrDownstreamFailure = errors.New("flight engine failure")

	// ErrFetchModeUnavailable is returned when no fetcher serves the requested mode.
	ErrFetchModeUnavailable = errors.New("fetch mode unavailable")
)

// ValidationError is a single field-level violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in a request.
// Its message is the first violation, so a caller can fix one field at a time.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (v *ValidationErrors) Unwrap() error {
	return ErrInvalidRequest
}

// Add records a violation.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// Addf records a violation with a formatted message.
func (v *ValidationErrors) Addf(field, format string, args ...any) {
	v.Add(field, fmt.Sprintf(format, args...))
}

// HasErrors returns true if any violation was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Has reports whether a violation was recorded for the field.
func (v *ValidationErrors) Has(field string) bool {
	for _, e := range v.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ToMap converts the violations to a field → message map.
// Only the first message per field is kept.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// EngineError wraps a failure reported by, or while reaching, the flight engine.
type EngineError struct {
	// Mode is the fetch mode whose fetcher failed
	Mode FetchMode

	// StatusCode is the engine's HTTP status, 0 when no response was received
	StatusCode int

	// Err is the underlying error
	Err error
}

// NewEngineError creates an EngineError for the given mode.
func NewEngineError(mode FetchMode, statusCode int, err error) *EngineError {
	return &EngineError{
		Mode:       mode,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s fetch failed with status %d: %v", e.Mode, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s fetch failed: %v", e.Mode, e.Err)
}

// Unwrap returns the underlying error.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// Is makes every EngineError match ErrDownstreamFailure.
func (e *EngineError) Is(target error) bool {
	return target == ErrDownstreamFailure
}
