package mentorchat

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/mentor"
	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/ui/components"
	"github.com/abhisek/cyberpath/internal/ui/layout"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// Stream pump messages. The stream is drained one fragment per
// command so the UI stays responsive while tokens arrive.
type startedMsg struct {
	stream llm.Stream
	err    error
}

type fragmentMsg struct {
	stream llm.Stream
	frag   llm.Fragment
}

type doneMsg struct {
	err error
}

// MentorScreen is the AI mentor chat panel.
type MentorScreen struct {
	session  *state.Session
	provider llm.Provider
	topic    *catalog.Topic
	chat     *mentor.Chat
	input    components.TextInput
	tier     llm.Tier

	// messages is a render snapshot of the transcript, refreshed on
	// every chat mutation so View never races the stream commands.
	messages []mentor.Message
	waiting  bool
}

var _ screen.Screen = (*MentorScreen)(nil)
var _ screen.KeyHintProvider = (*MentorScreen)(nil)
var _ screen.InputCapturer = (*MentorScreen)(nil)

// New creates the mentor screen. topic may be nil for general
// questions; provider may be nil when no API key is configured.
func New(session *state.Session, provider llm.Provider, topic *catalog.Topic) *MentorScreen {
	m := &MentorScreen{
		session:  session,
		provider: provider,
		topic:    topic,
		input:    components.NewTextInput("Ask your mentor...", false, 400),
		tier:     llm.TierFast,
	}
	if provider != nil {
		m.chat = mentor.NewChat(provider)
	}
	return m
}

func (m *MentorScreen) Title() string {
	if m.topic != nil {
		return "Mentor · " + m.topic.Title
	}
	return "AI Mentor"
}

func (m *MentorScreen) Init() tea.Cmd {
	return m.input.Init()
}

func (m *MentorScreen) CapturingInput() bool { return true }

func (m *MentorScreen) promptContext() mentor.PromptContext {
	return mentor.PromptContext{
		Role:     m.session.SelectedRole(),
		Topic:    m.topic,
		Answers:  m.session.Answers(),
		Progress: m.session.Progress(),
	}
}

func (m *MentorScreen) snapshot() {
	src := m.chat.Transcript().Messages()
	m.messages = make([]mentor.Message, len(src))
	copy(m.messages, src)
}

// send dispatches a question. Ask runs in a command so a slow
// provider handshake never freezes the UI.
func (m *MentorScreen) send(question string) tea.Cmd {
	if m.chat == nil || m.waiting || m.chat.Busy() || strings.TrimSpace(question) == "" {
		return nil
	}
	m.waiting = true
	chat, pctx, tier := m.chat, m.promptContext(), m.tier
	return func() tea.Msg {
		stream, err := chat.Ask(context.Background(), pctx, question, tier)
		return startedMsg{stream: stream, err: err}
	}
}

func recvCmd(stream llm.Stream) tea.Cmd {
	return func() tea.Msg {
		frag, err := stream.Recv()
		if err == io.EOF {
			return doneMsg{}
		}
		if err != nil {
			return doneMsg{err: err}
		}
		return fragmentMsg{stream: stream, frag: frag}
	}
}

func (m *MentorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		m.snapshot()
		if msg.err != nil {
			m.waiting = false
			return m, nil
		}
		return m, recvCmd(msg.stream)

	case fragmentMsg:
		m.chat.Advance(msg.frag)
		m.snapshot()
		return m, recvCmd(msg.stream)

	case doneMsg:
		m.chat.Finish(msg.err)
		m.waiting = false
		m.snapshot()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			question := m.input.Value()
			m.input.SetValue("")
			return m, m.send(question)
		case "ctrl+t":
			if m.tier == llm.TierFast {
				m.tier = llm.TierDeep
			} else {
				m.tier = llm.TierFast
			}
			return m, nil
		case "ctrl+e", "ctrl+r", "ctrl+p", "ctrl+q":
			if m.topic == nil {
				return m, nil
			}
			action := map[string]mentor.QuickAction{
				"ctrl+e": mentor.ActionExplain,
				"ctrl+r": mentor.ActionResources,
				"ctrl+p": mentor.ActionPlan,
				"ctrl+q": mentor.ActionQuiz,
			}[msg.String()]
			return m, m.send(action.Question(m.topic.Title))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *MentorScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+T", Description: "Tier: " + string(m.tier)},
	}
	if m.topic != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+E/R/P/Q", Description: "Quick actions"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (m *MentorScreen) View(width, height int) string {
	if m.chat == nil {
		msg := strings.Join([]string{
			theme.Title.Render("AI Mentor is not configured"),
			"",
			theme.Body.Render("Set one of these environment variables and restart:"),
			theme.Hint.Render("  ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY"),
			theme.Hint.Render("  or CYBERPATH_MENTOR_PROVIDER / CYBERPATH_MENTOR_API_KEY"),
		}, "\n")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	maxWidth := min(width-8, 72)
	var b strings.Builder

	if m.topic != nil {
		b.WriteString("  " + theme.Hint.Render("Current topic: "+m.topic.Title) + "\n\n")
	}

	transcript := m.renderTranscript(maxWidth, height-8)
	b.WriteString(transcript)

	if m.waiting {
		b.WriteString("\n  " + theme.Hint.Render("thinking...") + "\n")
	}

	b.WriteString("\n  " + m.input.View() + "\n")
	return b.String()
}

func (m *MentorScreen) renderTranscript(width, maxLines int) string {
	var lines []string
	for _, msg := range m.messages {
		bubble := theme.Card.Width(width)
		label := theme.Selected.Render("mentor")
		if msg.Role == llm.RoleUser {
			label = theme.Body.Bold(true).Render("you")
		}
		if msg.Failed {
			bubble = bubble.BorderForeground(theme.Error)
		}

		body := msg.Text
		if len(msg.Sources) > 0 {
			var srcs []string
			for i, s := range msg.Sources {
				title := s.Title
				if title == "" {
					title = s.URI
				}
				srcs = append(srcs, fmt.Sprintf("[%d] %s", i+1, title))
			}
			body += "\n\n" + strings.Join(srcs, "\n")
		}

		lines = append(lines, "  "+label)
		lines = append(lines, bubble.Render(body))
	}

	out := strings.Join(lines, "\n")

	// Keep the tail visible; the newest exchange matters most.
	split := strings.Split(out, "\n")
	if maxLines > 0 && len(split) > maxLines {
		split = split[len(split)-maxLines:]
	}
	return strings.Join(split, "\n")
}
