package state

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/settings"
	"github.com/abhisek/cyberpath/internal/snapshot"
)

type memorySaver struct {
	saves [][]byte
	err   error
}

func (m *memorySaver) Save(_ context.Context, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, append([]byte(nil), data...))
	return nil
}

func (m *memorySaver) latest(t *testing.T) snapshot.State {
	t.Helper()
	if len(m.saves) == 0 {
		t.Fatal("no saves recorded")
	}
	st, err := snapshot.Decode(m.saves[len(m.saves)-1])
	if err != nil {
		t.Fatalf("decode latest save: %v", err)
	}
	return st
}

func mustRole(t *testing.T, id string) catalog.Role {
	t.Helper()
	role, err := catalog.RoleByID(id)
	if err != nil {
		t.Fatalf("role %q not found: %v", id, err)
	}
	return role
}

func TestNewSessionStartsEmpty(t *testing.T) {
	s := NewSession(nil)
	if s.SelectedRole() != nil {
		t.Error("fresh session has a role")
	}
	if len(s.Progress()) != 0 {
		t.Error("fresh session has progress")
	}
	if s.Settings() != settings.Default() {
		t.Errorf("settings = %+v, want defaults", s.Settings())
	}
	if _, ok := s.NextTopic(); ok {
		t.Error("next topic suggested without a role")
	}
}

func TestEveryMutationWritesThrough(t *testing.T) {
	saver := &memorySaver{}
	s := NewSession(saver)
	ctx := context.Background()

	s.AnswerSingle(ctx, "q1", "offense")
	s.ToggleMulti(ctx, "q6", "web_apps")
	s.SelectRole(ctx, mustRole(t, "web_app_pentester"))
	s.ToggleTopic(ctx, "linux_fundamentals", true)
	s.LogHours(ctx, "linux_fundamentals", 5)
	s.SaveNotes(ctx, "linux_fundamentals", "done the OverTheWire games")
	s.UpdateSettings(ctx, settings.Settings{AccentColor: settings.Teal, BorderRadius: settings.RadiusLG})

	if len(saver.saves) != 7 {
		t.Fatalf("saves = %d, want 7", len(saver.saves))
	}

	st := saver.latest(t)
	if st.SelectedRole == nil || st.SelectedRole.ID != "web_app_pentester" {
		t.Errorf("persisted role = %+v", st.SelectedRole)
	}
	rec, ok := st.Progress["linux_fundamentals"]
	if !ok || !rec.Completed || rec.HoursLogged != 5 || rec.Notes == "" {
		t.Errorf("persisted record = %+v", rec)
	}
	if st.Settings.AccentColor != settings.Teal {
		t.Errorf("persisted accent = %q", st.Settings.AccentColor)
	}
	if v, _ := st.Answers.Single("q1"); v != "offense" {
		t.Errorf("persisted q1 = %q", v)
	}
}

func TestSaveFailureKeepsSessionAuthoritative(t *testing.T) {
	saver := &memorySaver{err: errors.New("disk full")}
	s := NewSession(saver)
	ctx := context.Background()

	s.SelectRole(ctx, mustRole(t, "soc_analyst"))

	if s.SelectedRole() == nil || s.SelectedRole().ID != "soc_analyst" {
		t.Error("in-memory state lost after save failure")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	saver := &memorySaver{}
	s := NewSession(saver)
	ctx := context.Background()
	s.AnswerSingle(ctx, "q5", "beginner")
	s.SelectRole(ctx, mustRole(t, "soc_analyst"))
	s.ToggleTopic(ctx, "networking_basics_soc", true)

	restored := Restore(saver.saves[len(saver.saves)-1], &memorySaver{})

	if restored.SelectedRole() == nil || restored.SelectedRole().ID != "soc_analyst" {
		t.Errorf("restored role = %+v", restored.SelectedRole())
	}
	if !restored.Progress()["networking_basics_soc"].Completed {
		t.Error("restored progress lost completion")
	}
	if v, _ := restored.Answers().Single("q5"); v != "beginner" {
		t.Errorf("restored q5 = %q", v)
	}
}

func TestRestoreDiscardsCorruptSnapshot(t *testing.T) {
	s := Restore([]byte("{not json"), nil)
	if s.SelectedRole() != nil || len(s.Progress()) != 0 {
		t.Error("corrupt snapshot was not discarded")
	}
}

func TestRestoreEmptyDataIsFreshSession(t *testing.T) {
	s := Restore(nil, nil)
	if s.Settings() != settings.Default() {
		t.Errorf("settings = %+v, want defaults", s.Settings())
	}
}

func TestReselectingRoleKeepsProgress(t *testing.T) {
	s := NewSession(nil)
	ctx := context.Background()
	s.SelectRole(ctx, mustRole(t, "web_app_pentester"))
	s.ToggleTopic(ctx, "linux_fundamentals", true)

	s.ClearRole(ctx)
	s.SelectRole(ctx, mustRole(t, "web_app_pentester"))

	if !s.Progress()["linux_fundamentals"].Completed {
		t.Error("progress lost across role reselection")
	}
}

func TestImportReplacesState(t *testing.T) {
	donor := NewSession(nil)
	ctx := context.Background()
	donor.SelectRole(ctx, mustRole(t, "appsec_engineer"))
	donor.ToggleTopic(ctx, "secure_coding", true)
	exported, err := donor.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	saver := &memorySaver{}
	s := NewSession(saver)
	s.SelectRole(ctx, mustRole(t, "soc_analyst"))

	if err := s.Import(ctx, exported); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if s.SelectedRole().ID != "appsec_engineer" {
		t.Errorf("role after import = %q", s.SelectedRole().ID)
	}
	if !s.Progress()["secure_coding"].Completed {
		t.Error("imported progress missing")
	}
	if len(saver.saves) == 0 {
		t.Error("import did not write through")
	}
}

func TestImportFailureLeavesStateUntouched(t *testing.T) {
	s := NewSession(nil)
	ctx := context.Background()
	s.SelectRole(ctx, mustRole(t, "soc_analyst"))

	err := s.Import(ctx, []byte(`{"exportVersion":"2.0","answers":{}}`))
	if !errors.Is(err, ErrImport) {
		t.Fatalf("err = %v, want ErrImport", err)
	}
	if s.SelectedRole() == nil || s.SelectedRole().ID != "soc_analyst" {
		t.Error("failed import mutated state")
	}
}

func TestResetClearsEverything(t *testing.T) {
	saver := &memorySaver{}
	s := NewSession(saver)
	ctx := context.Background()
	s.AnswerSingle(ctx, "q1", "defense")
	s.SelectRole(ctx, mustRole(t, "soc_analyst"))
	s.ToggleTopic(ctx, "networking_basics_soc", true)

	s.Reset(ctx)

	if _, answered := s.Answers().Single("q1"); s.SelectedRole() != nil || len(s.Progress()) != 0 || answered {
		t.Error("reset left state behind")
	}
	st := saver.latest(t)
	if st.SelectedRole != nil || len(st.Progress) != 0 {
		t.Error("reset was not persisted")
	}
}

func TestNextTopicAndStatsFollowSelectedRole(t *testing.T) {
	s := NewSession(nil)
	ctx := context.Background()
	s.SelectRole(ctx, mustRole(t, "soc_analyst"))

	topic, ok := s.NextTopic()
	if !ok {
		t.Fatal("no next topic on fresh roadmap")
	}
	if topic.ID != "networking_basics_soc" {
		t.Errorf("next topic = %q, want networking_basics_soc", topic.ID)
	}

	s.ToggleTopic(ctx, "networking_basics_soc", true)
	stats, ok := s.Stats()
	if !ok {
		t.Fatal("no stats with role selected")
	}
	if stats.CompletedTopics != 1 {
		t.Errorf("completed = %d, want 1", stats.CompletedTopics)
	}
}
