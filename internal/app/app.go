package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/router"
	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/screens/home"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/store"
	"github.com/abhisek/cyberpath/internal/ui/layout"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *state.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(session *state.Session, provider llm.Provider) AppModel {
	return AppModel{
		router:  router.New(home.New(session, provider)),
		session: session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if capturer, ok := m.router.Active().(screen.InputCapturer); ok && capturer.CapturingInput() {
				break // the screen's own editor handles esc
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := layout.HeaderStatus{}
	if role := m.session.SelectedRole(); role != nil {
		status.Role = role.Name
		if stats, ok := m.session.Stats(); ok {
			status.Percent = stats.CompletionPercent
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run restores the session from the store, builds the mentor provider
// if credentials exist, and starts the Bubble Tea program.
func Run(ctx context.Context, st *store.Store) error {
	stateRepo := st.StateRepo()

	var data []byte
	if persisted, err := stateRepo.Latest(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load saved state: %v\n", err)
	} else if persisted != nil {
		data = persisted.Data
	}

	session := state.Restore(data, stateRepo)
	theme.Apply(session.Settings())

	var provider llm.Provider
	if cfg, err := llm.ConfigFromEnv(); err == nil {
		provider, err = llm.NewProvider(ctx, cfg, st.MentorEventRepo())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: mentor disabled: %v\n", err)
			provider = nil
		}
	} else if !errors.Is(err, llm.ErrNotConfigured) {
		fmt.Fprintf(os.Stderr, "warning: mentor disabled: %v\n", err)
	}

	p := tea.NewProgram(newAppModel(session, provider))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
