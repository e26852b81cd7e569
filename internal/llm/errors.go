package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured indicates no provider API key is available.
var ErrNotConfigured = errors.New("no LLM provider configured")

// ErrRateLimit indicates the provider rejected the request due to rate
// limiting. RetryAfter is zero when the provider did not say.
type ErrRateLimit struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s rate limited, retry after %s: %v", e.Provider, e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("%s rate limited: %v", e.Provider, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider returned something the
// client could not use, e.g. an empty choice list.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// isRetryable reports whether err is worth retrying.
func isRetryable(err error) bool {
	var rateLimit *ErrRateLimit
	if errors.As(err, &rateLimit) {
		return true
	}
	var unavailable *ErrProviderUnavailable
	return errors.As(err, &unavailable)
}
