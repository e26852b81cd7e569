package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// ChoiceItem is one selectable entry with a stable value and a label.
type ChoiceItem struct {
	Value string
	Label string
}

// Chooser is a vertical single-choice list. Enter reports the
// highlighted value through OnChoose.
type Chooser struct {
	Items    []ChoiceItem
	Cursor   int
	OnChoose func(value string) tea.Cmd
}

// NewChooser creates a chooser over the given items.
func NewChooser(items []ChoiceItem, onChoose func(string) tea.Cmd) Chooser {
	return Chooser{Items: items, OnChoose: onChoose}
}

// Init returns nil (no initial command).
func (c Chooser) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (c Chooser) Update(msg tea.Msg) (Chooser, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "enter":
		if c.OnChoose != nil && c.Cursor >= 0 && c.Cursor < len(c.Items) {
			return c, c.OnChoose(c.Items[c.Cursor].Value)
		}
	}

	return c, nil
}

// Selected returns the highlighted item's value.
func (c Chooser) Selected() string {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ""
	}
	return c.Items[c.Cursor].Value
}

// View renders the chooser, marking the highlighted line.
func (c Chooser) View(current string) string {
	var s string
	for i, item := range c.Items {
		marker := "( )"
		if item.Value == current {
			marker = "(•)"
		}
		line := marker + " " + item.Label
		if i == c.Cursor {
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			s += theme.Unselected.Render("    "+line) + "\n"
		}
	}
	return s
}

// Checklist is a vertical multi-choice list. Space or enter toggles
// the highlighted value through OnToggle; checked state is supplied by
// the caller at render time so the list never drifts from the answers.
type Checklist struct {
	Items    []ChoiceItem
	Cursor   int
	OnToggle func(value string) tea.Cmd
}

// NewChecklist creates a checklist over the given items.
func NewChecklist(items []ChoiceItem, onToggle func(string) tea.Cmd) Checklist {
	return Checklist{Items: items, OnToggle: onToggle}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case " ", "space", "enter":
		if c.OnToggle != nil && c.Cursor >= 0 && c.Cursor < len(c.Items) {
			return c, c.OnToggle(c.Items[c.Cursor].Value)
		}
	}

	return c, nil
}

// View renders the checklist. checked reports per-value state.
func (c Checklist) View(checked func(value string) bool) string {
	var s string
	for i, item := range c.Items {
		marker := "[ ]"
		style := theme.Unselected
		if checked != nil && checked(item.Value) {
			marker = "[x]"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		line := marker + " " + item.Label
		if i == c.Cursor {
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		} else {
			s += style.Render("    "+line) + "\n"
		}
	}
	return s
}
