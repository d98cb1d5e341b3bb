package promptaudit

import (
	"errors"
	"fmt"
)

// ErrorKind classifies analysis failures into a closed set so both the
// CLI and HTTP layers can map errors to a presentation without
// provider-specific logic.
type ErrorKind string

// Analysis error kinds.
const (
	// KindProviderError covers network, auth, and rate-limit failures
	// from the judge model's provider.
	KindProviderError ErrorKind = "provider_error"
	// KindMalformedResponse means the judge returned unparsable or
	// incomplete JSON.
	KindMalformedResponse ErrorKind = "malformed_response"
	// KindTimeout means the round trip exceeded the configured duration.
	KindTimeout ErrorKind = "timeout"
	// KindInvalidRequest means the caller's input failed basic shape
	// checks, e.g. an empty prompt.
	KindInvalidRequest ErrorKind = "invalid_request"
)

// AnalysisError is the only error type returned by Analyzer
// implementations.
type AnalysisError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	// Upstream is the provider's HTTP status code, 0 when unknown or
	// not applicable. Presentation layers may use it to distinguish
	// rate limiting from other provider failures.
	Upstream int `json:"-"`
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Errorf constructs an AnalysisError with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind from err. The second return value is
// false when err is not an *AnalysisError.
func KindOf(err error) (ErrorKind, bool) {
	var aerr *AnalysisError
	if errors.As(err, &aerr) {
		return aerr.Kind, true
	}
	return "", false
}
