package roadmap

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/state"
)

func testSession(t *testing.T) *state.Session {
	t.Helper()
	s := state.NewSession(nil)
	role, err := catalog.RoleByID("web_app_pentester")
	if err != nil {
		t.Fatalf("RoleByID: %v", err)
	}
	s.SelectRole(context.Background(), role)
	return s
}

// moveTo positions the cursor on the row holding the given topic.
func moveTo(t *testing.T, r *RoadmapScreen, topicID string) {
	t.Helper()
	for i, rw := range r.rows {
		if rw.topic != nil && rw.topic.ID == topicID {
			r.cursor = i
			return
		}
	}
	t.Fatalf("topic %q not in roadmap rows", topicID)
}

func TestToggleTopicWithUnmetPrerequisites(t *testing.T) {
	s := testSession(t)
	r := New(s, nil)

	moveTo(t, r, "owasp_top10")
	if len(r.unmet(r.current())) == 0 {
		t.Fatal("owasp_top10 should have unmet prerequisites in a fresh session")
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})

	if !s.Progress()["owasp_top10"].Completed {
		t.Error("space did not mark a topic with unmet prerequisites complete")
	}
}

func TestToggleTopicBackToIncomplete(t *testing.T) {
	s := testSession(t)
	r := New(s, nil)

	moveTo(t, r, "networking_basics")
	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	r.Update(tea.KeyPressMsg{Code: tea.KeySpace})

	if s.Progress()["networking_basics"].Completed {
		t.Error("second space did not revert the topic to incomplete")
	}
}

func TestUnmetPrerequisitesWarnInDetail(t *testing.T) {
	s := testSession(t)
	r := New(s, nil)

	moveTo(t, r, "owasp_top10")
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := r.View(100, 40)
	if !strings.Contains(view, "Prerequisites not met") {
		t.Error("detail card missing the prerequisite warning")
	}
}

func TestRoadmapScreenTitle(t *testing.T) {
	s := testSession(t)
	r := New(s, nil)
	if r.Title() != "Web Application Pentester" {
		t.Errorf("Title = %q, want the selected role name", r.Title())
	}
}
