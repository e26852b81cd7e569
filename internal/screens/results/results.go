package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/router"
	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/screens/roadmap"
	"github.com/abhisek/cyberpath/internal/scoring"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/ui/layout"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// ResultsScreen shows the top recommended roles and lets the user
// commit to one.
type ResultsScreen struct {
	session  *state.Session
	provider llm.Provider
	recs     []scoring.Recommendation
	cursor   int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New ranks the current answers and creates the results screen.
func New(session *state.Session, provider llm.Provider) *ResultsScreen {
	return &ResultsScreen{
		session:  session,
		provider: provider,
		recs:     session.Recommendations(),
	}
}

func (r *ResultsScreen) Title() string { return "Your Results" }

func (r *ResultsScreen) Init() tea.Cmd { return nil }

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.recs)-1 {
			r.cursor++
		}
	case "enter":
		if r.cursor < len(r.recs) {
			role := r.recs[r.cursor].Role
			r.session.SelectRole(context.Background(), role)
			session, provider := r.session, r.provider
			return r, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: roadmap.New(session, provider)}
			}
		}
	}

	return r, nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Choose this path"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) View(width, height int) string {
	sections := []string{
		theme.Title.Render("Your Top Career Matches"),
		"",
	}

	cardWidth := min(width-8, 72)

	for i, rec := range r.recs {
		sections = append(sections, r.renderCard(i, rec, cardWidth), "")
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) renderCard(i int, rec scoring.Recommendation, width int) string {
	selected := i == r.cursor

	name := theme.Body.Bold(true).Render(fmt.Sprintf("#%d  %s", i+1, rec.Role.Name))
	match := theme.Selected.Render(fmt.Sprintf("%d%% match", rec.MatchPercent))

	gap := width - lipgloss.Width(name) - lipgloss.Width(match) - 6
	if gap < 1 {
		gap = 1
	}
	head := name + strings.Repeat(" ", gap) + match

	lines := []string{
		head,
		theme.Hint.Render(rec.Role.Description),
		"",
		theme.Body.Render("Salary: ") + theme.Subtitle.Render(rec.Role.SalaryRange),
		theme.Body.Render("Skills: ") + theme.Subtitle.Render(strings.Join(rec.Role.KeySkills, ", ")),
		theme.Body.Render("Certs:  ") + theme.Subtitle.Render(strings.Join(rec.Role.Certifications, ", ")),
	}

	style := theme.Card.Width(width)
	if selected {
		style = style.BorderForeground(theme.Accent500)
	}
	return style.Render(strings.Join(lines, "\n"))
}
