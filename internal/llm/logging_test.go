package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/abhisek/cyberpath/internal/store"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []store.MentorEventData
}

func (f *fakeEventRepo) Append(_ context.Context, data store.MentorEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) Usage(context.Context) (store.MentorUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	usage := store.MentorUsage{Requests: len(f.events)}
	for _, e := range f.events {
		if !e.Success {
			usage.Failures++
		}
	}
	return usage, nil
}

func TestLoggingRecordsSuccessOnEOF(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockStream{Fragments: []Fragment{{Text: "answer"}}})
	p := WithLogging(mock, repo)

	stream, err := p.GenerateStream(context.Background(), Request{Tier: TierDeep})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	if _, _, err := collect(t, stream); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success || e.Provider != "mock" || e.Tier != "deep" {
		t.Errorf("event = %+v, want successful mock/deep", e)
	}
}

func TestLoggingRecordsEstablishFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockStream{
		EstablishErr: &ErrProviderUnavailable{Provider: "mock", Err: errors.New("down")},
	})
	p := WithLogging(mock, repo)

	if _, err := p.GenerateStream(context.Background(), Request{}); err == nil {
		t.Fatal("expected establish error")
	}
	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("events = %+v, want one failure", repo.events)
	}
	if repo.events[0].ErrorMessage == "" {
		t.Error("failure event missing error message")
	}
}

func TestLoggingRecordsMidStreamFailureOnce(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockStream{
		Fragments: []Fragment{{Text: "partial"}},
		Err:       &ErrRateLimit{Provider: "mock", Err: errors.New("429")},
	})
	p := WithLogging(mock, repo)

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	_, _, err = collect(t, stream)
	if err == nil {
		t.Fatal("expected mid-stream error")
	}
	// Close after failure must not record a second event.
	_ = stream.Close()

	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("events = %+v, want exactly one failure", repo.events)
	}
}

func TestLoggingRecordsAbandonedStreamAsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockStream{Fragments: []Fragment{{Text: "long"}, {Text: " answer"}}})
	p := WithLogging(mock, repo)

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	if _, err := stream.Recv(); err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(repo.events) != 1 || !repo.events[0].Success {
		t.Fatalf("events = %+v, want one success", repo.events)
	}
}
