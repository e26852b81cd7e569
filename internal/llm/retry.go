package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls retry behavior for stream establishment.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns sensible retry defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     8 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter. Only establishing the stream is
// retried; once fragments are flowing, a mid-stream failure surfaces
// to the caller so partial output is not silently duplicated.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Name() string { return r.inner.Name() }

func (r *RetryProvider) ModelID(tier Tier) string {
	return r.inner.ModelID(tier)
}

func (r *RetryProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		stream, err := r.inner.GenerateStream(ctx, req)
		if err == nil {
			return stream, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt, don't sleep.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Missing credentials won't fix themselves.
	if errors.Is(err, ErrNotConfigured) {
		return false
	}
	return isRetryable(err)
}

// backoff computes the wait duration for the given attempt.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
