package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestStateSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	// No state yet.
	st, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if st != nil {
		t.Fatal("expected nil state when none exist")
	}

	if err := repo.Save(ctx, []byte(`{"exportVersion":"1.0","answers":{}}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, []byte(`{"exportVersion":"1.0","answers":{"q1":"offense"}}`)); err != nil {
		t.Fatalf("save second: %v", err)
	}

	st, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if st == nil {
		t.Fatal("expected a stored state")
	}
	if st.Sequence != 2 {
		t.Errorf("Sequence = %d, want 2", st.Sequence)
	}
	if want := `{"exportVersion":"1.0","answers":{"q1":"offense"}}`; string(st.Data) != want {
		t.Errorf("Data = %s, want latest envelope", st.Data)
	}
}

func TestStateSave_PrunesOldRows(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	for i := 0; i < keepSnapshots+5; i++ {
		payload := fmt.Sprintf(`{"exportVersion":"1.0","answers":{},"n":%d}`, i)
		if err := repo.Save(ctx, []byte(payload)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	count, err := s.Client().StateSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count > keepSnapshots {
		t.Errorf("stored rows = %d, want at most %d after prune", count, keepSnapshots)
	}

	st, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if st.Sequence != int64(keepSnapshots+5) {
		t.Errorf("latest sequence = %d, want %d", st.Sequence, keepSnapshots+5)
	}
}

func TestStateReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, []byte(`{"exportVersion":"1.0","answers":{}}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	st, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after reset: %v", err)
	}
	if st != nil {
		t.Fatal("expected no state after reset")
	}
}

func TestMentorEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.MentorEventRepo()
	ctx := context.Background()

	events := []MentorEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Tier: "fast", LatencyMs: 420, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-pro", Tier: "deep", LatencyMs: 1800, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Tier: "fast", LatencyMs: 90, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.Usage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.Requests != 3 {
		t.Errorf("Requests = %d, want 3", usage.Requests)
	}
	if usage.Failures != 1 {
		t.Errorf("Failures = %d, want 1", usage.Failures)
	}
}
