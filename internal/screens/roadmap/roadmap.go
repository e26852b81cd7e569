package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/progress"
	"github.com/abhisek/cyberpath/internal/router"
	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/screens/mentorchat"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/ui/components"
	"github.com/abhisek/cyberpath/internal/ui/layout"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// editMode is the inline editor state on the roadmap screen.
type editMode int

const (
	editNone editMode = iota
	editHours
	editNotes
)

// row is one rendered line: a phase header or a topic.
type row struct {
	phase *catalog.Phase
	topic *catalog.Topic
}

// RoadmapScreen shows the selected role's phased roadmap with
// per-topic completion, hour logging, and notes.
type RoadmapScreen struct {
	session  *state.Session
	provider llm.Provider
	roadmap  catalog.Roadmap
	rows     []row
	cursor   int
	mode     editMode
	input    components.TextInput
	detail   bool
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)
var _ screen.InputCapturer = (*RoadmapScreen)(nil)

// New creates the roadmap screen for the session's selected role.
func New(session *state.Session, provider llm.Provider) *RoadmapScreen {
	r := &RoadmapScreen{session: session, provider: provider}
	if roadmap, ok := session.Roadmap(); ok {
		r.roadmap = roadmap
		for pi := range roadmap.Phases {
			phase := &roadmap.Phases[pi]
			r.rows = append(r.rows, row{phase: phase})
			for ti := range phase.Topics {
				r.rows = append(r.rows, row{topic: &phase.Topics[ti]})
			}
		}
	}
	r.cursorToFirstTopic()
	return r
}

func (r *RoadmapScreen) cursorToFirstTopic() {
	for i, rw := range r.rows {
		if rw.topic != nil {
			r.cursor = i
			return
		}
	}
}

func (r *RoadmapScreen) Title() string {
	if role := r.session.SelectedRole(); role != nil {
		return role.Name
	}
	return "Roadmap"
}

func (r *RoadmapScreen) Init() tea.Cmd { return nil }

func (r *RoadmapScreen) CapturingInput() bool { return r.mode != editNone }

func (r *RoadmapScreen) current() *catalog.Topic {
	if r.cursor < 0 || r.cursor >= len(r.rows) {
		return nil
	}
	return r.rows[r.cursor].topic
}

func (r *RoadmapScreen) move(delta int) {
	i := r.cursor + delta
	for i >= 0 && i < len(r.rows) {
		if r.rows[i].topic != nil {
			r.cursor = i
			return
		}
		i += delta
	}
}

func (r *RoadmapScreen) unmet(topic *catalog.Topic) []string {
	return progress.MissingPrerequisites(*topic, r.session.Progress())
}

func (r *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if r.mode != editNone {
		return r.updateEditor(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		r.move(-1)
	case "down", "j":
		r.move(1)
	case "enter":
		r.detail = !r.detail
	case " ", "space":
		// Unmet prerequisites only warn; completion is never blocked.
		if topic := r.current(); topic != nil {
			done := r.session.Progress()[topic.ID].Completed
			r.session.ToggleTopic(context.Background(), topic.ID, !done)
		}
	case "h":
		if topic := r.current(); topic != nil {
			r.mode = editHours
			r.input = components.NewTextInput("hours", true, 8)
			if rec, ok := r.session.Progress()[topic.ID]; ok && rec.HoursLogged > 0 {
				r.input.SetValue(fmt.Sprintf("%g", rec.HoursLogged))
			}
			return r, r.input.Init()
		}
	case "n":
		if topic := r.current(); topic != nil {
			r.mode = editNotes
			r.input = components.NewTextInput("notes", false, 200)
			if rec, ok := r.session.Progress()[topic.ID]; ok {
				r.input.SetValue(rec.Notes)
			}
			return r, r.input.Init()
		}
	case "m":
		topic := r.current()
		session, provider := r.session, r.provider
		return r, func() tea.Msg {
			return router.PushScreenMsg{Screen: mentorchat.New(session, provider, topic)}
		}
	}

	return r, nil
}

func (r *RoadmapScreen) updateEditor(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			r.mode = editNone
			return r, nil
		case "enter":
			topic := r.current()
			if topic != nil {
				switch r.mode {
				case editHours:
					if hours, err := r.input.HoursValue(); err == nil {
						r.session.LogHours(context.Background(), topic.ID, hours)
					}
				case editNotes:
					r.session.SaveNotes(context.Background(), topic.ID, r.input.Value())
				}
			}
			r.mode = editNone
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

func (r *RoadmapScreen) KeyHints() []layout.KeyHint {
	if r.mode != editNone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "Enter", Description: "Details"},
		{Key: "H", Description: "Hours"},
		{Key: "N", Description: "Notes"},
		{Key: "M", Description: "Mentor"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RoadmapScreen) View(width, height int) string {
	if len(r.rows) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No roadmap yet. Take the quiz and choose a path first."))
	}

	log := r.session.Progress()
	var b strings.Builder

	if stats, ok := r.session.Stats(); ok {
		bar := components.NewProgressBar(
			fmt.Sprintf("%d/%d topics", stats.CompletedTopics, stats.TotalTopics),
			float64(stats.CompletionPercent)/100,
			true,
			min(width-8, 64),
		)
		b.WriteString("  " + bar.View() + "\n")
		b.WriteString("  " + theme.Hint.Render(fmt.Sprintf("%g hours logged", stats.TotalHoursLogged)) + "\n")
	}

	if next, ok := r.session.NextTopic(); ok {
		b.WriteString("  " + theme.Selected.Render("Up next: "+next.Title) + "\n")
	}
	b.WriteString("\n")

	for i, rw := range r.rows {
		if rw.phase != nil {
			b.WriteString(theme.Title.Render("  "+rw.phase.Title) + "\n")
			continue
		}
		b.WriteString(r.renderTopic(rw.topic, log, i == r.cursor) + "\n")
	}

	if r.mode != editNone {
		label := "Log hours: "
		if r.mode == editNotes {
			label = "Notes: "
		}
		b.WriteString("\n  " + theme.Body.Render(label) + r.input.View() + "\n")
	} else if r.detail {
		if topic := r.current(); topic != nil {
			b.WriteString("\n" + r.renderDetail(topic, width) + "\n")
		}
	}

	return b.String()
}

func (r *RoadmapScreen) renderTopic(topic *catalog.Topic, log progress.Log, selected bool) string {
	rec := log[topic.ID]
	missing := r.unmet(topic)

	marker := "[ ]"
	style := theme.Unselected
	switch {
	case rec.Completed:
		marker = "[✓]"
		style = theme.Checked
	case len(missing) > 0:
		marker = "[!]"
		style = theme.Locked
	case rec.InProgress():
		marker = "[~]"
	}

	line := fmt.Sprintf("%s %s (%dh)", marker, topic.Title, topic.EstimatedHours)
	if rec.HoursLogged > 0 {
		line += theme.Hint.Render(fmt.Sprintf("  %g logged", rec.HoursLogged))
	}

	prefix := "    "
	if selected {
		prefix = "  ▸ "
		style = theme.Selected
	}
	return style.Render(prefix + line)
}

func (r *RoadmapScreen) renderDetail(topic *catalog.Topic, width int) string {
	log := r.session.Progress()
	lines := []string{
		theme.Body.Bold(true).Render(topic.Title),
		theme.Subtitle.Render(topic.Description),
		"",
		theme.Hint.Render("Why it matters: " + topic.WhyImportant),
	}

	if missing := r.unmet(topic); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, id := range missing {
			names[i] = catalog.TopicTitle(r.roadmap.ID, id)
		}
		lines = append(lines, "",
			lipgloss.NewStyle().Foreground(theme.Warning).Render("Prerequisites not met: "+strings.Join(names, ", ")))
	}

	if len(topic.Resources) > 0 {
		lines = append(lines, "", theme.Body.Render("Resources:"))
		for _, res := range topic.Resources {
			tag := lipgloss.NewStyle().Foreground(theme.Free).Render("[FREE]")
			if res.Type == catalog.Paid {
				tag = lipgloss.NewStyle().Foreground(theme.Paid).Render("[PAID]")
			}
			lines = append(lines, "  "+tag+" "+theme.Subtitle.Render(res.Title+"  "+res.URL))
		}
	}

	if rec, ok := log[topic.ID]; ok && rec.Notes != "" {
		lines = append(lines, "", theme.Hint.Render("Notes: "+rec.Notes))
	}

	return theme.Card.Width(min(width-6, 76)).Render(strings.Join(lines, "\n"))
}
