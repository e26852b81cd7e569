package progress

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestToggleComplete_StampsDate(t *testing.T) {
	log := Log{}
	log = log.ToggleComplete("owasp_top10", true, now)

	rec := log["owasp_top10"]
	if !rec.Completed {
		t.Fatal("record should be completed")
	}
	if rec.DateCompleted == nil || !rec.DateCompleted.Equal(now) {
		t.Errorf("DateCompleted = %v, want %v", rec.DateCompleted, now)
	}
}

func TestToggleComplete_UndoPreservesHoursAndNotes(t *testing.T) {
	log := Log{}
	log = log.LogHours("owasp_top10", 12.5)
	log = log.SaveNotes("owasp_top10", "finished the labs")
	log = log.ToggleComplete("owasp_top10", true, now)
	log = log.ToggleComplete("owasp_top10", false, now.Add(time.Hour))

	rec := log["owasp_top10"]
	if rec.Completed {
		t.Error("record should no longer be completed")
	}
	if rec.DateCompleted != nil {
		t.Errorf("DateCompleted should be cleared, got %v", rec.DateCompleted)
	}
	if rec.HoursLogged != 12.5 {
		t.Errorf("HoursLogged = %v, want 12.5 preserved", rec.HoursLogged)
	}
	if rec.Notes != "finished the labs" {
		t.Errorf("Notes = %q, want preserved", rec.Notes)
	}
}

func TestUpdates_DoNotMutateReceiver(t *testing.T) {
	orig := Log{}
	updated := orig.ToggleComplete("a", true, now)

	if len(orig) != 0 {
		t.Error("ToggleComplete mutated the original log")
	}
	if !updated.Completed("a") {
		t.Error("returned log missing the update")
	}

	orig = updated
	updated = orig.LogHours("a", 3)
	if orig["a"].HoursLogged != 0 {
		t.Error("LogHours mutated the original log")
	}
	updated2 := updated.SaveNotes("a", "x")
	if updated["a"].Notes != "" {
		t.Error("SaveNotes mutated the original log")
	}
	if updated2["a"].Notes != "x" {
		t.Error("SaveNotes result missing notes")
	}
}

func TestLogHours_ClampsNegative(t *testing.T) {
	log := Log{}.LogHours("a", -5)
	if log["a"].HoursLogged != 0 {
		t.Errorf("HoursLogged = %v, want 0 for negative input", log["a"].HoursLogged)
	}
}

func TestLogHours_PreservesCompletion(t *testing.T) {
	log := Log{}.ToggleComplete("a", true, now).LogHours("a", 8)
	rec := log["a"]
	if !rec.Completed || rec.DateCompleted == nil {
		t.Error("LogHours should preserve completion state")
	}
	if rec.HoursLogged != 8 {
		t.Errorf("HoursLogged = %v, want 8", rec.HoursLogged)
	}
}

func TestRecord_StateMachine(t *testing.T) {
	var rec Record
	if rec.Completed || rec.InProgress() {
		t.Error("zero record should be untouched")
	}

	log := Log{}.LogHours("a", 1)
	if !log["a"].InProgress() {
		t.Error("record with hours should be in progress")
	}

	log = log.ToggleComplete("a", true, now)
	if log["a"].InProgress() {
		t.Error("completed record is not in progress")
	}

	log = log.ToggleComplete("a", false, now)
	if !log["a"].InProgress() {
		t.Error("un-completing with hours logged returns to in progress")
	}
}

func TestUntouchedTopic_EquivalentToNotCompleted(t *testing.T) {
	log := Log{}
	if log.Completed("never_seen") {
		t.Error("untouched topic must read as not completed")
	}
	if _, ok := log["never_seen"]; ok {
		t.Error("reading must not create a record")
	}
}
