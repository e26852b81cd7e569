package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     2 * time.Millisecond,
		Multiplier:  1.5,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockStream{EstablishErr: &ErrProviderUnavailable{Provider: "mock", Err: errors.New("down")}},
		MockStream{Fragments: []Fragment{{Text: "ok"}}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	text, _, err := collect(t, stream)
	if err != nil || text != "ok" {
		t.Errorf("got %q, %v; want ok, nil", text, err)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("calls = %d, want 2", len(mock.Calls))
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	fail := MockStream{EstablishErr: &ErrRateLimit{Provider: "mock", Err: errors.New("429")}}
	mock := NewMockProvider(fail, fail, fail, fail)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.GenerateStream(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if len(mock.Calls) != 3 {
		t.Errorf("calls = %d, want 3", len(mock.Calls))
	}
}

func TestRetryDoesNotRetryMissingConfig(t *testing.T) {
	mock := NewMockProvider(
		MockStream{EstablishErr: ErrNotConfigured},
		MockStream{Fragments: []Fragment{{Text: "never"}}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.GenerateStream(context.Background(), Request{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("calls = %d, want 1", len(mock.Calls))
	}
}

func TestRetryDoesNotRetryCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockStream{EstablishErr: context.Canceled},
		MockStream{Fragments: []Fragment{{Text: "never"}}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.GenerateStream(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("calls = %d, want 1", len(mock.Calls))
	}
}

func TestRetryDoesNotResumeMidStream(t *testing.T) {
	midErr := &ErrProviderUnavailable{Provider: "mock", Err: errors.New("dropped")}
	mock := NewMockProvider(
		MockStream{Fragments: []Fragment{{Text: "partial"}}, Err: midErr},
		MockStream{Fragments: []Fragment{{Text: "fresh"}}},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	// The mid-stream failure surfaces; the second canned stream is untouched.
	_, _, err = collect(t, stream)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(mock.Calls) != 1 {
		t.Errorf("calls = %d, want 1", len(mock.Calls))
	}
}

func TestBackoffHonorsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetryConfig(3)}
	wait := r.backoff(0, &ErrRateLimit{Provider: "mock", RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("wait = %v, want 42ms", wait)
	}
}
