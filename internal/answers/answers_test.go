package answers

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/abhisek/cyberpath/internal/catalog"
)

func TestNew_SeedsEveryQuestion(t *testing.T) {
	s := New(catalog.Questions())

	for _, q := range catalog.Questions() {
		if s.Answered(q.ID) {
			t.Errorf("fresh set should have question %q unanswered", q.ID)
		}
	}
	if got := s.Multi("q6"); got == nil || len(got) != 0 {
		t.Errorf("fresh multi-select should be an empty list, got %v", got)
	}
}

func TestSelect_OverwritesPrevious(t *testing.T) {
	s := New(catalog.Questions())
	s.Select("q1", "offense")
	s.Select("q1", "defense")

	v, ok := s.Single("q1")
	if !ok || v != "defense" {
		t.Errorf("Single(q1) = %q, %v; want defense, true", v, ok)
	}
}

func TestToggle_AddAndRemove(t *testing.T) {
	s := New(catalog.Questions())

	s.Toggle("q6", "web_apps")
	s.Toggle("q6", "cloud")
	if got := s.Multi("q6"); !reflect.DeepEqual(got, []string{"web_apps", "cloud"}) {
		t.Errorf("Multi(q6) = %v", got)
	}

	s.Toggle("q6", "web_apps")
	if got := s.Multi("q6"); !reflect.DeepEqual(got, []string{"cloud"}) {
		t.Errorf("Multi(q6) after remove = %v", got)
	}

	s.Toggle("q6", "cloud")
	s.Toggle("q6", "cloud")
	if s.Contains("q6", "cloud") {
		t.Error("double toggle should leave cloud deselected")
	}
}

func TestClear(t *testing.T) {
	s := New(catalog.Questions())
	s.Select("q1", "offense")
	s.Toggle("q6", "malware")

	s.Clear("q1")
	s.Clear("q6")

	if s.Answered("q1") || s.Answered("q6") {
		t.Error("cleared questions should be unanswered")
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	s := New(catalog.Questions())
	s.Select("q1", "defense")
	s.Select("q3", "analysis")
	s.Toggle("q6", "networks")
	s.Toggle("q6", "malware")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Set
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(s, &decoded) {
		t.Errorf("round trip mismatch:\n  in:  %+v\n  out: %+v", s, &decoded)
	}
}

func TestJSON_WireShape(t *testing.T) {
	s := New(catalog.Questions())
	s.Select("q1", "offense")

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if string(raw["q1"]) != `"offense"` {
		t.Errorf("q1 = %s, want string", raw["q1"])
	}
	if string(raw["q2"]) != "null" {
		t.Errorf("unanswered single q2 = %s, want null", raw["q2"])
	}
	if string(raw["q6"]) != "[]" {
		t.Errorf("empty multi q6 = %s, want []", raw["q6"])
	}
}

func TestUnmarshal_DedupesMultiValues(t *testing.T) {
	var s Set
	err := json.Unmarshal([]byte(`{"q6": ["web_apps", "web_apps", "cloud"]}`), &s)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := s.Multi("q6"); !reflect.DeepEqual(got, []string{"web_apps", "cloud"}) {
		t.Errorf("Multi(q6) = %v, want deduped", got)
	}
}

func TestUnmarshal_RejectsUnsupportedValue(t *testing.T) {
	var s Set
	if err := json.Unmarshal([]byte(`{"q1": 42}`), &s); err == nil {
		t.Fatal("expected error for numeric answer value")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := New(catalog.Questions())
	s.Toggle("q6", "cloud")

	clone := s.Clone()
	clone.Toggle("q6", "malware")
	clone.Select("q1", "offense")

	if s.Contains("q6", "malware") {
		t.Error("mutating the clone leaked into the original multi map")
	}
	if s.Answered("q1") {
		t.Error("mutating the clone leaked into the original single map")
	}
}
