package llm

import (
	"context"
	"io"
	"sync"
)

// MockStream is a scripted response for the MockProvider: a sequence
// of fragments, optionally terminated by an error instead of io.EOF.
// EstablishErr, when set, fails GenerateStream itself.
type MockStream struct {
	Fragments    []Fragment
	Err          error
	EstablishErr error
}

// MockProvider is a deterministic Provider for testing.
// It plays canned streams in FIFO order and records all requests.
type MockProvider struct {
	mu      sync.Mutex
	streams []MockStream
	Calls   []Request
}

// NewMockProvider creates a MockProvider with the given canned streams.
func NewMockProvider(streams ...MockStream) *MockProvider {
	return &MockProvider{streams: streams}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) ModelID(Tier) string { return "mock" }

// GenerateStream returns the next canned stream or ErrProviderUnavailable
// if the queue is empty.
func (m *MockProvider) GenerateStream(_ context.Context, req Request) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.streams) == 0 {
		return nil, &ErrProviderUnavailable{Provider: "mock"}
	}

	script := m.streams[0]
	m.streams = m.streams[1:]

	if script.EstablishErr != nil {
		return nil, script.EstablishErr
	}
	return &mockStream{script: script}, nil
}

type mockStream struct {
	script MockStream
	pos    int
	closed bool
}

func (s *mockStream) Recv() (Fragment, error) {
	if s.closed {
		return Fragment{}, io.EOF
	}
	if s.pos < len(s.script.Fragments) {
		frag := s.script.Fragments[s.pos]
		s.pos++
		return frag, nil
	}
	if s.script.Err != nil {
		return Fragment{}, s.script.Err
	}
	return Fragment{}, io.EOF
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}
