package appearance

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/settings"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/ui/layout"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// option is one settings row.
type option struct {
	label string
	apply func(settings.Settings) settings.Settings
	isSet func(settings.Settings) bool
}

// AppearanceScreen edits the accent color and border radius. Changes
// apply and persist immediately.
type AppearanceScreen struct {
	session *state.Session
	options []option
	cursor  int
}

var _ screen.Screen = (*AppearanceScreen)(nil)
var _ screen.KeyHintProvider = (*AppearanceScreen)(nil)

// New creates the appearance screen.
func New(session *state.Session) *AppearanceScreen {
	accent := func(c settings.AccentColor) option {
		return option{
			label: "Accent: " + string(c),
			apply: func(s settings.Settings) settings.Settings { s.AccentColor = c; return s },
			isSet: func(s settings.Settings) bool { return s.AccentColor == c },
		}
	}
	radius := func(r settings.BorderRadius, label string) option {
		return option{
			label: "Borders: " + label,
			apply: func(s settings.Settings) settings.Settings { s.BorderRadius = r; return s },
			isSet: func(s settings.Settings) bool { return s.BorderRadius == r },
		}
	}

	return &AppearanceScreen{
		session: session,
		options: []option{
			accent(settings.Indigo),
			accent(settings.Teal),
			accent(settings.Rose),
			radius(settings.RadiusLG, "square"),
			radius(settings.Radius2XL, "rounded"),
			radius(settings.Radius3XL, "double"),
		},
	}
}

func (a *AppearanceScreen) Title() string { return "Appearance" }

func (a *AppearanceScreen) Init() tea.Cmd { return nil }

func (a *AppearanceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.options)-1 {
			a.cursor++
		}
	case "enter", " ", "space":
		cfg := a.options[a.cursor].apply(a.session.Settings())
		a.session.UpdateSettings(context.Background(), cfg)
		theme.Apply(a.session.Settings())
	}

	return a, nil
}

func (a *AppearanceScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Apply"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AppearanceScreen) View(width, height int) string {
	cfg := a.session.Settings()
	var rows []string
	rows = append(rows, theme.Title.Render("Appearance"), "")

	for i, opt := range a.options {
		marker := "( )"
		if opt.isSet(cfg) {
			marker = "(•)"
		}
		line := marker + " " + opt.label
		if i == a.cursor {
			rows = append(rows, theme.Selected.Render("  ▸ "+line))
		} else {
			rows = append(rows, theme.Unselected.Render("    "+line))
		}
	}

	rows = append(rows, "", theme.Card.Render("Preview card with the current accent and border"))

	content := strings.Join(rows, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
