package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/router"
	"github.com/abhisek/cyberpath/internal/screen"
	"github.com/abhisek/cyberpath/internal/screens/results"
	"github.com/abhisek/cyberpath/internal/state"
	"github.com/abhisek/cyberpath/internal/ui/components"
	"github.com/abhisek/cyberpath/internal/ui/layout"
	"github.com/abhisek/cyberpath/internal/ui/theme"
)

// QuizScreen walks through the questionnaire one question at a time.
// Answers persist as they are given, so quitting mid-quiz loses
// nothing.
type QuizScreen struct {
	session   *state.Session
	provider  llm.Provider
	questions []catalog.Question
	index     int

	chooser   components.Chooser
	checklist components.Checklist
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen positioned at the first unanswered question.
func New(session *state.Session, provider llm.Provider) *QuizScreen {
	q := &QuizScreen{
		session:   session,
		provider:  provider,
		questions: catalog.Questions(),
	}
	for i, question := range q.questions {
		if !session.Answers().Answered(question.ID) {
			q.index = i
			break
		}
	}
	q.rebuild()
	return q
}

func (q *QuizScreen) Title() string { return "Career Quiz" }

func (q *QuizScreen) Init() tea.Cmd { return nil }

// rebuild recreates the input component for the current question.
func (q *QuizScreen) rebuild() {
	question := q.questions[q.index]
	items := make([]components.ChoiceItem, len(question.Options))
	for i, opt := range question.Options {
		items[i] = components.ChoiceItem{Value: opt.Value, Label: opt.Label}
	}

	if question.Type == catalog.Multiple {
		id := question.ID
		q.checklist = components.NewChecklist(items, func(value string) tea.Cmd {
			q.session.ToggleMulti(context.Background(), id, value)
			return nil
		})
		return
	}

	id := question.ID
	q.chooser = components.NewChooser(items, func(value string) tea.Cmd {
		q.session.AnswerSingle(context.Background(), id, value)
		return q.advance()
	})
}

// advance moves to the next question, or replaces the screen with the
// results once every question is done.
func (q *QuizScreen) advance() tea.Cmd {
	if q.index+1 < len(q.questions) {
		q.index++
		q.rebuild()
		return nil
	}
	session, provider := q.session, q.provider
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(session, provider)}
	}
}

// retreat moves back one question.
func (q *QuizScreen) retreat() {
	if q.index > 0 {
		q.index--
		q.rebuild()
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	question := q.questions[q.index]

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			q.retreat()
			return q, nil
		case "right", "l":
			if q.session.Answers().Answered(question.ID) {
				return q, q.advance()
			}
			return q, nil
		case "n":
			// Multi questions need an explicit continue key since
			// enter toggles.
			if question.Type == catalog.Multiple && q.session.Answers().Answered(question.ID) {
				return q, q.advance()
			}
		}
	}

	var cmd tea.Cmd
	if question.Type == catalog.Multiple {
		q.checklist, cmd = q.checklist.Update(msg)
	} else {
		q.chooser, cmd = q.chooser.Update(msg)
	}
	return q, cmd
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	question := q.questions[q.index]
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
	}
	if question.Type == catalog.Multiple {
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: "Toggle"},
			layout.KeyHint{Key: "N", Description: "Next"},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Answer"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "←→", Description: "Prev/Next"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (q *QuizScreen) View(width, height int) string {
	question := q.questions[q.index]

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", q.index+1, len(q.questions)),
		float64(q.index)/float64(len(q.questions)),
		false,
		min(width-8, 60),
	)

	var body string
	if question.Type == catalog.Multiple {
		answers := q.session.Answers()
		id := question.ID
		body = q.checklist.View(func(value string) bool {
			return answers.Contains(id, value)
		})
	} else {
		current, _ := q.session.Answers().Single(question.ID)
		body = q.chooser.View(current)
	}

	sections := []string{
		bar.View(),
		"",
		theme.Title.Render(question.Title),
		theme.Subtitle.Render(question.Description),
		"",
		body,
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
