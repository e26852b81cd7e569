package mentor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/abhisek/cyberpath/internal/answers"
	"github.com/abhisek/cyberpath/internal/catalog"
	"github.com/abhisek/cyberpath/internal/llm"
	"github.com/abhisek/cyberpath/internal/progress"
)

func TestBuildPromptIncludesProfileAndTopic(t *testing.T) {
	role, _ := catalog.RoleByID("web_app_pentester")
	roadmap, _ := catalog.RoadmapForRole(role)
	topic := roadmap.Phases[0].Topics[0]

	set := answers.New(catalog.Questions())
	set.Select("q5", "beginner")
	set.Toggle("q6", "web_apps")
	set.Toggle("q6", "networks")
	set.Select("q9", "hands_on")

	log := progress.Log{}
	log = log.LogHours("networking_basics", 12.5)

	prompt := BuildPrompt(PromptContext{
		Role: &role, Topic: &topic, Answers: set, Progress: log,
	}, "Where do I start?")

	for _, want := range []string{
		"become a Web Application Pentester",
		"Current Level: beginner",
		"Primary Interests: web_apps, networks",
		"Learning Style: hands_on",
		"12.5 hours logged",
		"Current Topic: " + topic.Title,
		`Student Question: "Where do I start?"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptWithoutContextPassesThrough(t *testing.T) {
	got := BuildPrompt(PromptContext{}, "What is XSS?")
	if got != "What is XSS?" {
		t.Errorf("prompt = %q, want passthrough", got)
	}
}

func TestBuildPromptNoPrerequisites(t *testing.T) {
	role, _ := catalog.RoleByID("web_app_pentester")
	roadmap, _ := catalog.RoadmapForRole(role)
	topic := roadmap.Phases[0].Topics[0]
	if len(topic.Prerequisites) != 0 {
		t.Skip("first topic grew prerequisites")
	}

	prompt := BuildPrompt(PromptContext{Role: &role, Topic: &topic}, "hi")
	if !strings.Contains(prompt, "Prerequisites: None") {
		t.Error("prompt missing empty-prerequisite marker")
	}
}

func TestQuickActionQuestions(t *testing.T) {
	got := ActionQuiz.Question("SQL Injection")
	if !strings.Contains(got, `"SQL Injection"`) || !strings.Contains(got, "multiple choice") {
		t.Errorf("quiz question = %q", got)
	}
	for _, a := range QuickActions {
		if a.Question("X") == "" || a.Label() == "" {
			t.Errorf("action %q has empty question or label", a)
		}
	}
}

func drain(t *testing.T, c *Chat, stream llm.Stream) error {
	t.Helper()
	for {
		frag, err := stream.Recv()
		if err == io.EOF {
			c.Finish(nil)
			return nil
		}
		if err != nil {
			c.Finish(err)
			return err
		}
		c.Advance(frag)
	}
}

func TestChatStreamsIntoTranscript(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockStream{
		Fragments: []llm.Fragment{
			{Text: "Start with ", Sources: []llm.Source{{URI: "https://a.example", Title: "A"}}},
			{Text: "the basics.", Sources: []llm.Source{
				{URI: "https://a.example", Title: "A"},
				{URI: "https://b.example", Title: "B"},
			}},
		},
	})
	c := NewChat(provider)

	stream, err := c.Ask(context.Background(), PromptContext{}, "Where do I start?", llm.TierFast)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if !c.Busy() {
		t.Error("chat not busy during stream")
	}
	if err := drain(t, c, stream); err != nil {
		t.Fatalf("drain: %v", err)
	}

	msgs := c.Transcript().Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].Role != llm.RoleUser || msgs[0].Text != "Where do I start?" {
		t.Errorf("user message = %+v", msgs[0])
	}
	model := msgs[1]
	if model.Text != "Start with the basics." {
		t.Errorf("model text = %q", model.Text)
	}
	if len(model.Sources) != 2 {
		t.Errorf("sources = %v, want 2 after dedupe", model.Sources)
	}
	if msgs[0].ID == "" || msgs[0].ID == model.ID {
		t.Error("message IDs missing or duplicated")
	}
	if c.Busy() {
		t.Error("chat still busy after finish")
	}
}

func TestChatRejectsSecondAskWhileBusy(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockStream{Fragments: []llm.Fragment{{Text: "thinking"}}},
		llm.MockStream{Fragments: []llm.Fragment{{Text: "never"}}},
	)
	c := NewChat(provider)

	stream, err := c.Ask(context.Background(), PromptContext{}, "first", llm.TierFast)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if _, err := c.Ask(context.Background(), PromptContext{}, "second", llm.TierFast); !errors.Is(err, ErrBusy) {
		t.Fatalf("err = %v, want ErrBusy", err)
	}

	_ = drain(t, c, stream)
	if _, err := c.Ask(context.Background(), PromptContext{}, "third", llm.TierFast); err != nil {
		t.Fatalf("Ask after finish: %v", err)
	}
}

func TestChatMidStreamFailureKeepsTranscriptUsable(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockStream{
			Fragments: []llm.Fragment{{Text: "partial answer"}},
			Err:       &llm.ErrRateLimit{Provider: "mock", Err: errors.New("429")},
		},
		llm.MockStream{Fragments: []llm.Fragment{{Text: "recovered"}}},
	)
	c := NewChat(provider)

	stream, err := c.Ask(context.Background(), PromptContext{}, "hello?", llm.TierFast)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if err := drain(t, c, stream); err == nil {
		t.Fatal("expected mid-stream error")
	}

	msgs := c.Transcript().Messages()
	model := msgs[len(msgs)-1]
	if !model.Failed {
		t.Error("model message not marked failed")
	}
	if !strings.Contains(model.Text, "partial answer") {
		t.Error("partial text lost on failure")
	}
	if !strings.Contains(model.Text, "try again") {
		t.Error("failure apology missing")
	}

	// A new question still works.
	stream, err = c.Ask(context.Background(), PromptContext{}, "retry", llm.TierFast)
	if err != nil {
		t.Fatalf("Ask after failure: %v", err)
	}
	if err := drain(t, c, stream); err != nil {
		t.Fatalf("drain after failure: %v", err)
	}
	if got := c.Transcript().Len(); got != 4 {
		t.Errorf("transcript len = %d, want 4", got)
	}
}

func TestChatEstablishFailureRecordsFailedMessage(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockStream{
		EstablishErr: &llm.ErrProviderUnavailable{Provider: "mock", Err: errors.New("down")},
	})
	c := NewChat(provider)

	if _, err := c.Ask(context.Background(), PromptContext{}, "anyone there?", llm.TierFast); err == nil {
		t.Fatal("expected establish error")
	}
	msgs := c.Transcript().Messages()
	if len(msgs) != 2 || !msgs[1].Failed {
		t.Fatalf("transcript = %+v, want user message plus failed model message", msgs)
	}
	if c.Busy() {
		t.Error("chat stuck busy after establish failure")
	}
}

func TestChatRejectsBlankQuestion(t *testing.T) {
	c := NewChat(llm.NewMockProvider())
	if _, err := c.Ask(context.Background(), PromptContext{}, "   ", llm.TierFast); err == nil {
		t.Fatal("expected error for blank question")
	}
	if c.Transcript().Len() != 0 {
		t.Error("blank question reached transcript")
	}
}

func TestChatResetClearsTranscript(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockStream{Fragments: []llm.Fragment{{Text: "hi"}}})
	c := NewChat(provider)
	stream, err := c.Ask(context.Background(), PromptContext{}, "hi", llm.TierFast)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	_ = drain(t, c, stream)

	c.Reset()
	if c.Transcript().Len() != 0 {
		t.Error("reset left messages behind")
	}
}
