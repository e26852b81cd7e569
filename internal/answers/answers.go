// Package answers holds the user's questionnaire responses. The set is
// pure data: screens mutate it through the session, the scoring engine
// only reads it.
package answers

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abhisek/cyberpath/internal/catalog"
)

// Set maps question IDs to responses. Single-select questions hold at
// most one value; multi-select questions hold an ordered, deduplicated
// list. Every catalog question has an entry, possibly empty.
type Set struct {
	singles map[string]string
	multis  map[string][]string
}

// New creates a Set with an empty entry for every given question.
func New(questions []catalog.Question) *Set {
	s := &Set{
		singles: make(map[string]string),
		multis:  make(map[string][]string),
	}
	for _, q := range questions {
		if q.Type == catalog.Multiple {
			s.multis[q.ID] = []string{}
		} else {
			s.singles[q.ID] = ""
		}
	}
	return s
}

// Select sets the response to a single-select question.
func (s *Set) Select(questionID, value string) {
	delete(s.multis, questionID)
	s.singles[questionID] = value
}

// Toggle adds the value to a multi-select response, or removes it when
// already present. Duplicates never accumulate.
func (s *Set) Toggle(questionID, value string) {
	delete(s.singles, questionID)
	current := s.multis[questionID]
	if i := slices.Index(current, value); i >= 0 {
		s.multis[questionID] = slices.Delete(slices.Clone(current), i, i+1)
		return
	}
	s.multis[questionID] = append(slices.Clone(current), value)
}

// Clear removes the response to a question, keeping its entry empty.
func (s *Set) Clear(questionID string) {
	if _, ok := s.multis[questionID]; ok {
		s.multis[questionID] = []string{}
		return
	}
	s.singles[questionID] = ""
}

// Single returns the response to a single-select question and whether
// it has been answered.
func (s *Set) Single(questionID string) (string, bool) {
	v := s.singles[questionID]
	return v, v != ""
}

// Multi returns the response values for a multi-select question.
// Never nil for questions seeded by New.
func (s *Set) Multi(questionID string) []string {
	return slices.Clone(s.multis[questionID])
}

// Contains reports whether a multi-select response includes the value.
func (s *Set) Contains(questionID, value string) bool {
	return slices.Contains(s.multis[questionID], value)
}

// Answered reports whether the question has a non-empty response.
func (s *Set) Answered(questionID string) bool {
	if v, ok := s.singles[questionID]; ok {
		return v != ""
	}
	return len(s.multis[questionID]) > 0
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	out := &Set{
		singles: make(map[string]string, len(s.singles)),
		multis:  make(map[string][]string, len(s.multis)),
	}
	for k, v := range s.singles {
		out.singles[k] = v
	}
	for k, v := range s.multis {
		out.multis[k] = slices.Clone(v)
	}
	return out
}

// MarshalJSON renders the original wire shape:
// {"q1": "offense", "q6": ["web_apps"], "q2": null}.
func (s *Set) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.singles)+len(s.multis))
	for qid, v := range s.singles {
		if v == "" {
			out[qid] = nil
		} else {
			out[qid] = v
		}
	}
	for qid, vs := range s.multis {
		out[qid] = vs
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the wire shape, inferring single vs multi from
// the JSON value type. Null entries become unanswered single-selects.
// Question IDs absent from the catalog are kept as-is; the scoring
// engine simply ignores them.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("answers: %w", err)
	}

	s.singles = make(map[string]string)
	s.multis = make(map[string][]string)

	for qid, v := range raw {
		switch {
		case string(v) == "null":
			s.singles[qid] = ""
		case len(v) > 0 && v[0] == '"':
			var single string
			if err := json.Unmarshal(v, &single); err != nil {
				return fmt.Errorf("answers: question %q: %w", qid, err)
			}
			s.singles[qid] = single
		case len(v) > 0 && v[0] == '[':
			var multi []string
			if err := json.Unmarshal(v, &multi); err != nil {
				return fmt.Errorf("answers: question %q: %w", qid, err)
			}
			if multi == nil {
				multi = []string{}
			}
			s.multis[qid] = dedupe(multi)
		default:
			return fmt.Errorf("answers: question %q: unsupported value %s", qid, v)
		}
	}
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
