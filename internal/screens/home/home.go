package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/router"
	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/screens/appearance"
	"github.com/abhisek/cyberpath/internal/screens/mentorchat"
	"github.com/abhisek/cyberpath/internal/screens/quiz"
	"github.com/abhisek/cyberpath/internal/screens/results"
	"github.com/abhisek/cyberpath/internal/screens/roadmap"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/ui/components"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

const bannerArt = `
 ▄████▄▓██   ██▓ ▄▄▄▄   ▓█████  ██▀███   ██▓███   ▄▄▄     ▄▄▄█████▓ ██░ ██
▒██▀ ▀█ ▒██  ██▒▓█████▄ ▓█   ▀ ▓██ ▒ ██▒▓██░  ██▒▒████▄   ▓  ██▒ ▓▒▓██░ ██▒
▒▓█    ▄ ▒██ ██░▒██▒ ▄██▒███   ▓██ ░▄█ ▒▓██░ ██▓▒▒██  ▀█▄ ▒ ▓██░ ▒░▒██▀▀██░
▒▓▓▄ ▄██▒░ ▐██▓░▒██░█▀  ▒▓█  ▄ ▒██▀▀█▄  ▒██▄█▓▒ ▒░██▄▄▄▄██░ ▓██▓ ░ ░▓█ ░██
▒ ▓███▀ ░░ ██▒▓░░▓█  ▀█▓░▒████▒░██▓ ▒██▒▒██▒ ░  ░ ▓█   ▓██▒ ▒██▒ ░ ░▓█▒░██▓`

// Menu positions that depend on session state.
const (
	menuRecommendations = 1
	menuRoadmap         = 2
)

// HomeScreen is the main navigation hub.
type HomeScreen struct {
	menu    components.Menu
	session *state.Session
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. provider may be nil when no LLM
// credentials are available; the mentor entry then explains how to
// enable it instead of opening a chat.
func New(session *state.Session, provider llm.Provider) *HomeScreen {
	hasRole := session.SelectedRole() != nil
	answered := session.Answers().Answered("q1")

	items := []components.MenuItem{
		{Label: "CAREER QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(session, provider)}
			}
		}},
		{Label: "RECOMMENDATIONS", Disabled: !answered, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(session, provider)}
			}
		}},
		{Label: "MY ROADMAP", Disabled: !hasRole, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmap.New(session, provider)}
			}
		}},
		{Label: "AI MENTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mentorchat.New(session, provider, nil)}
			}
		}},
		{Label: "APPEARANCE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: appearance.New(session)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		session: session,
	}
}

func (h *HomeScreen) Title() string { return "Home" }

func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Entries unlock as the session advances, so popping back here
	// after the quiz must re-enable them.
	h.menu.Items[menuRecommendations].Disabled = !h.session.Answers().Answered("q1")
	h.menu.Items[menuRoadmap].Disabled = h.session.SelectedRole() == nil

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	banner := lipgloss.NewStyle().Foreground(theme.Accent500).Render(strings.TrimPrefix(bannerArt, "\n"))
	sections = append(sections, banner, "")

	tagline := theme.Subtitle.Render("Find your path into cybersecurity")
	sections = append(sections, tagline, "")

	if role := h.session.SelectedRole(); role != nil {
		if stats, ok := h.session.Stats(); ok {
			status := fmt.Sprintf("%s  ·  %d/%d topics  ·  %g hours logged",
				role.Name, stats.CompletedTopics, stats.TotalTopics, stats.TotalHoursLogged)
			sections = append(sections, theme.Hint.Render(status), "")
		}
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
