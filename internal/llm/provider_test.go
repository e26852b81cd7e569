package llm

import (
	"context"
	"errors"
	"io"
	"testing"
)

// collect drains a stream into text and sources.
func collect(t *testing.T, s Stream) (string, []Source, error) {
	t.Helper()
	var text string
	var sources []Source
	for {
		frag, err := s.Recv()
		if err == io.EOF {
			return text, sources, nil
		}
		if err != nil {
			return text, sources, err
		}
		text += frag.Text
		sources = append(sources, frag.Sources...)
	}
}

func TestMockProviderPlaysFragmentsInOrder(t *testing.T) {
	p := NewMockProvider(MockStream{
		Fragments: []Fragment{
			{Text: "hello "},
			{Text: "world", Sources: []Source{{URI: "https://owasp.org", Title: "OWASP"}}},
		},
	})

	stream, err := p.GenerateStream(context.Background(), Request{Tier: TierFast})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	text, sources, err := collect(t, stream)
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if text != "hello world" {
		t.Errorf("text = %q, want %q", text, "hello world")
	}
	if len(sources) != 1 || sources[0].URI != "https://owasp.org" {
		t.Errorf("sources = %v, want one OWASP source", sources)
	}
}

func TestMockProviderMidStreamError(t *testing.T) {
	wantErr := &ErrProviderUnavailable{Provider: "mock", Err: errors.New("boom")}
	p := NewMockProvider(MockStream{
		Fragments: []Fragment{{Text: "partial"}},
		Err:       wantErr,
	})

	stream, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	text, _, err := collect(t, stream)
	if text != "partial" {
		t.Errorf("text before failure = %q, want %q", text, "partial")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestMockProviderExhaustedQueue(t *testing.T) {
	p := NewMockProvider()
	if _, err := p.GenerateStream(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty queue")
	}
}

func TestMockProviderRecordsCalls(t *testing.T) {
	p := NewMockProvider(MockStream{}, MockStream{})

	_, _ = p.GenerateStream(context.Background(), Request{Tier: TierFast})
	_, _ = p.GenerateStream(context.Background(), Request{Tier: TierDeep})

	if len(p.Calls) != 2 {
		t.Fatalf("Calls = %d, want 2", len(p.Calls))
	}
	if p.Calls[1].Tier != TierDeep {
		t.Errorf("second call tier = %q, want %q", p.Calls[1].Tier, TierDeep)
	}
}

func TestResolveTierDefaultsToFast(t *testing.T) {
	if got := resolveTier(""); got != TierFast {
		t.Errorf("resolveTier(\"\") = %q, want %q", got, TierFast)
	}
	if got := resolveTier(TierDeep); got != TierDeep {
		t.Errorf("resolveTier(deep) = %q, want %q", got, TierDeep)
	}
}

func TestTierModelsOverrides(t *testing.T) {
	defaults := map[Tier]string{TierFast: "fast-default", TierDeep: "deep-default"}

	models := tierModels(defaults, Config{})
	if models[TierFast] != "fast-default" || models[TierDeep] != "deep-default" {
		t.Errorf("no overrides: got %v", models)
	}

	models = tierModels(defaults, Config{FastModel: "custom-fast"})
	if models[TierFast] != "custom-fast" {
		t.Errorf("fast override not applied: %v", models)
	}
	if models[TierDeep] != "deep-default" {
		t.Errorf("deep default lost: %v", models)
	}
}
