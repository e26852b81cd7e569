// Package progress tracks per-topic roadmap state and derives
// suggestions from it. Updates are pure: each returns a new Log with
// only the targeted record changed, so screens can treat the log as an
// immutable value between mutations.
package progress

import "time"

// Record holds one topic's state. A topic without a record is
// untouched, equivalent to a zero Record.
type Record struct {
	Completed     bool       `json:"completed"`
	HoursLogged   float64    `json:"hoursLogged,omitempty"`
	DateCompleted *time.Time `json:"dateCompleted,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// InProgress reports whether the topic has been touched but not completed.
func (r Record) InProgress() bool {
	return !r.Completed && (r.HoursLogged > 0 || r.Notes != "")
}

// Log is the sparse topic ID -> Record map. Records exist only for
// topics the user has touched.
type Log map[string]Record

// Clone returns a shallow copy of the log. Records are value types,
// so a shallow copy is a full copy.
func (l Log) Clone() Log {
	out := make(Log, len(l))
	for id, rec := range l {
		out[id] = rec
	}
	return out
}

// ToggleComplete returns a log with the topic's completed flag set.
// Completing stamps now as the completion date; un-completing clears
// the date but preserves hours and notes.
func (l Log) ToggleComplete(topicID string, completed bool, now time.Time) Log {
	out := l.Clone()
	rec := out[topicID]
	rec.Completed = completed
	if completed {
		stamp := now
		rec.DateCompleted = &stamp
	} else {
		rec.DateCompleted = nil
	}
	out[topicID] = rec
	return out
}

// LogHours returns a log with the topic's logged hours replaced.
// Negative values are clamped to zero.
func (l Log) LogHours(topicID string, hours float64) Log {
	if hours < 0 {
		hours = 0
	}
	out := l.Clone()
	rec := out[topicID]
	rec.HoursLogged = hours
	out[topicID] = rec
	return out
}

// SaveNotes returns a log with the topic's notes replaced.
func (l Log) SaveNotes(topicID string, notes string) Log {
	out := l.Clone()
	rec := out[topicID]
	rec.Notes = notes
	out[topicID] = rec
	return out
}

// Completed reports whether the topic is marked complete.
func (l Log) Completed(topicID string) bool {
	return l[topicID].Completed
}

// CompletedSet returns the set of completed topic IDs.
func (l Log) CompletedSet() map[string]bool {
	out := make(map[string]bool)
	for id, rec := range l {
		if rec.Completed {
			out[id] = true
		}
	}
	return out
}
