package suggest

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential is returned when the generation backend rejects
	// the configured API key.
	ErrInvalidCredential = errors.New("invalid API key: backend rejected the configured credential")
	// ErrRateLimited is returned when the backend signals quota or rate
	// exhaustion. Callers should retry later; the generator never retries.
	ErrRateLimited = errors.New("backend rate limit exceeded")
)

// BackendError wraps any other backend failure, keeping the backend's own
// error text for diagnostics. That text is logged server-side and never
// shown to callers.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

// Backend is the generation backend port. It accepts a natural-language
// prompt and returns free text. Implementations classify their failures
// into ErrInvalidCredential, ErrRateLimited or *BackendError.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
