package progress

import (
	"testing"
	"time"

	"github.com/abhisek/cyberpath/internal/catalog"
)

// testRoadmap builds a two-phase roadmap:
//
//	p1: a (no prereqs), b (no prereqs)
//	p2: c (needs a), d (needs c)
func testRoadmap() catalog.Roadmap {
	return catalog.Roadmap{
		ID:   "rm",
		Name: "Test Roadmap",
		Phases: []catalog.Phase{
			{
				ID: "p1", Title: "Phase 1",
				Topics: []catalog.Topic{
					{ID: "a", Title: "A", EstimatedHours: 10},
					{ID: "b", Title: "B", EstimatedHours: 10},
				},
			},
			{
				ID: "p2", Title: "Phase 2",
				Topics: []catalog.Topic{
					{ID: "c", Title: "C", EstimatedHours: 20, Prerequisites: []string{"a"}},
					{ID: "d", Title: "D", EstimatedHours: 20, Prerequisites: []string{"c"}},
				},
			},
		},
	}
}

var ts = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestMissingPrerequisites(t *testing.T) {
	topic := catalog.Topic{ID: "d", Prerequisites: []string{"a", "c"}}

	missing := MissingPrerequisites(topic, Log{})
	if len(missing) != 2 {
		t.Fatalf("missing = %v, want both prerequisites", missing)
	}

	log := Log{}.ToggleComplete("a", true, ts)
	missing = MissingPrerequisites(topic, log)
	if len(missing) != 1 || missing[0] != "c" {
		t.Errorf("missing = %v, want [c]", missing)
	}

	log = log.ToggleComplete("c", true, ts)
	if missing := MissingPrerequisites(topic, log); len(missing) != 0 {
		t.Errorf("missing = %v, want empty when all prerequisites completed", missing)
	}
}

func TestNextTopic_EmptyProgress_FirstRootTopic(t *testing.T) {
	topic, ok := NextTopic(testRoadmap(), Log{})
	if !ok {
		t.Fatal("expected a suggestion on empty progress")
	}
	if topic.ID != "a" {
		t.Errorf("suggested %q, want first prerequisite-free topic %q", topic.ID, "a")
	}
}

func TestNextTopic_SkipsCompletedAndBlocked(t *testing.T) {
	log := Log{}.ToggleComplete("a", true, ts)

	topic, ok := NextTopic(testRoadmap(), log)
	if !ok || topic.ID != "b" {
		t.Fatalf("suggested %v/%v, want b (declaration order before unlocked c)", topic.ID, ok)
	}

	log = log.ToggleComplete("b", true, ts)
	topic, ok = NextTopic(testRoadmap(), log)
	if !ok || topic.ID != "c" {
		t.Fatalf("suggested %v/%v, want c", topic.ID, ok)
	}
}

func TestNextTopic_AllCompleted_None(t *testing.T) {
	log := Log{}
	for _, id := range []string{"a", "b", "c", "d"} {
		log = log.ToggleComplete(id, true, ts)
	}
	if _, ok := NextTopic(testRoadmap(), log); ok {
		t.Error("expected no suggestion when everything is completed")
	}
}

func TestNextTopic_StuckRoadmap_None(t *testing.T) {
	// Every incomplete topic has an unmet prerequisite: no fallback.
	rm := catalog.Roadmap{
		ID: "stuck",
		Phases: []catalog.Phase{{
			ID: "p1",
			Topics: []catalog.Topic{
				{ID: "a"},
				{ID: "b", Prerequisites: []string{"missing"}},
			},
		}},
	}
	log := Log{}.ToggleComplete("a", true, ts)
	if _, ok := NextTopic(rm, log); ok {
		t.Error("expected no suggestion on a stuck roadmap")
	}
}

func TestAggregate(t *testing.T) {
	rm := testRoadmap()
	log := Log{}.
		ToggleComplete("a", true, ts).
		LogHours("a", 9.5).
		LogHours("c", 4)

	stats := Aggregate(rm, log)
	if stats.TotalTopics != 4 {
		t.Errorf("TotalTopics = %d, want 4", stats.TotalTopics)
	}
	if stats.CompletedTopics != 1 {
		t.Errorf("CompletedTopics = %d, want 1", stats.CompletedTopics)
	}
	if stats.TotalHoursLogged != 13.5 {
		t.Errorf("TotalHoursLogged = %v, want 13.5", stats.TotalHoursLogged)
	}
	if stats.CompletionPercent != 25 {
		t.Errorf("CompletionPercent = %d, want 25", stats.CompletionPercent)
	}
}

func TestAggregate_EmptyRoadmap_ZeroPercent(t *testing.T) {
	stats := Aggregate(catalog.Roadmap{ID: "empty"}, Log{})
	if stats.CompletionPercent != 0 {
		t.Errorf("CompletionPercent = %d, want 0 for empty roadmap", stats.CompletionPercent)
	}
}

func TestAggregate_RoundsPercent(t *testing.T) {
	rm := catalog.Roadmap{
		ID: "three",
		Phases: []catalog.Phase{{
			ID:     "p",
			Topics: []catalog.Topic{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		}},
	}
	log := Log{}.ToggleComplete("a", true, ts)
	if got := Aggregate(rm, log).CompletionPercent; got != 33 {
		t.Errorf("CompletionPercent = %d, want 33", got)
	}
	log = log.ToggleComplete("b", true, ts)
	if got := Aggregate(rm, log).CompletionPercent; got != 67 {
		t.Errorf("CompletionPercent = %d, want 67", got)
	}
}
