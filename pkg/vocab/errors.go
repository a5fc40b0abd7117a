package vocab

import "errors"

// Domain errors. Clients wrap them with fmt.Errorf("...: %w", ...) so
// callers can branch with errors.Is.
var (
	// ErrNetwork covers transport failures, timeouts and non-2xx
	// responses from either external service.
	ErrNetwork = errors.New("network error")

	// ErrExtraction means an expected markup element or text marker was
	// not found in a response.
	ErrExtraction = errors.New("extraction error")

	// ErrValidation guards malformed input at API boundaries.
	ErrValidation = errors.New("validation error")
)
