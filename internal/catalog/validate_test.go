package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedDataPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidateRoadmap_DetectsCycle(t *testing.T) {
	rm := Roadmap{
		ID:   "rm",
		Name: "Test",
		Phases: []Phase{{
			ID: "p1", Title: "Phase 1",
			Topics: []Topic{
				{ID: "a", Prerequisites: []string{"b"}},
				{ID: "b", Prerequisites: []string{"a"}},
			},
		}},
	}
	errs := validateRoadmap(rm)
	if len(errs) == 0 {
		t.Fatal("expected errors for cycle, got none")
	}
	joined := strings.Join(errs, "\n")
	if !strings.Contains(joined, "cycle") {
		t.Errorf("errors should mention cycle, got: %s", joined)
	}
}

func TestValidateRoadmap_DetectsDanglingPrerequisite(t *testing.T) {
	rm := Roadmap{
		ID:   "rm",
		Name: "Test",
		Phases: []Phase{{
			ID: "p1", Title: "Phase 1",
			Topics: []Topic{
				{ID: "a"},
				{ID: "b", Prerequisites: []string{"nonexistent"}},
			},
		}},
	}
	errs := validateRoadmap(rm)
	if len(errs) == 0 {
		t.Fatal("expected errors for dangling prerequisite, got none")
	}
	if !strings.Contains(strings.Join(errs, "\n"), "nonexistent") {
		t.Errorf("errors should mention the missing ID, got: %v", errs)
	}
}

func TestValidateRoadmap_DetectsDuplicateTopicID(t *testing.T) {
	rm := Roadmap{
		ID:   "rm",
		Name: "Test",
		Phases: []Phase{
			{ID: "p1", Title: "Phase 1", Topics: []Topic{{ID: "a"}}},
			{ID: "p2", Title: "Phase 2", Topics: []Topic{{ID: "a"}}},
		},
	}
	errs := validateRoadmap(rm)
	if len(errs) == 0 {
		t.Fatal("expected errors for duplicate topic ID, got none")
	}
	if !strings.Contains(strings.Join(errs, "\n"), "duplicate") {
		t.Errorf("errors should mention duplicate, got: %v", errs)
	}
}

func TestValidate_DetectsBadRoleReferences(t *testing.T) {
	qs := []Question{{ID: "q1", Type: Single, Options: []Option{{Value: "a", Label: "A"}}}}
	rs := []Role{{ID: "r1", Category: "made_up", RoadmapID: "missing"}}
	err := validate(qs, rs, nil)
	if err == nil {
		t.Fatal("expected error for bad role references, got nil")
	}
	if !strings.Contains(err.Error(), "unknown category") {
		t.Errorf("error should mention unknown category, got: %v", err)
	}
	if !strings.Contains(err.Error(), "nonexistent roadmap") {
		t.Errorf("error should mention missing roadmap, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateOptionValue(t *testing.T) {
	qs := []Question{{
		ID: "q1", Type: Single,
		Options: []Option{{Value: "x", Label: "X"}, {Value: "x", Label: "X again"}},
	}}
	err := validate(qs, nil, nil)
	if err == nil {
		t.Fatal("expected error for duplicate option value, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate option value") {
		t.Errorf("error should mention duplicate option value, got: %v", err)
	}
}

func TestEveryRoleHasResolvableRoadmap(t *testing.T) {
	for _, role := range Roles() {
		if _, err := RoadmapForRole(role); err != nil {
			t.Errorf("role %q: %v", role.ID, err)
		}
	}
}

func TestTopicTitle_FallsBackToID(t *testing.T) {
	got := TopicTitle("WEB_APP_PENTESTER_ROADMAP", "no_such_topic")
	if got != "no_such_topic" {
		t.Errorf("TopicTitle fallback = %q, want raw ID", got)
	}

	got = TopicTitle("WEB_APP_PENTESTER_ROADMAP", "owasp_top10")
	if got != "OWASP Top 10" {
		t.Errorf("TopicTitle = %q, want %q", got, "OWASP Top 10")
	}
}
