package mentor

import (
	"github.com/google/uuid"

	"github.com/abhisek/cyberpath/internal/llm"
)

// Message is one entry in the chat transcript.
type Message struct {
	ID      string
	Role    llm.Role
	Text    string
	Sources []llm.Source
	// Failed marks a model message whose stream ended in an error.
	Failed bool
}

// Transcript is the ordered chat history for one mentor session.
type Transcript struct {
	messages []Message
	seenURIs map[string]bool
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{seenURIs: map[string]bool{}}
}

// Messages returns the history, oldest first.
func (t *Transcript) Messages() []Message { return t.messages }

// Len returns the number of messages.
func (t *Transcript) Len() int { return len(t.messages) }

// AppendUser adds a user question and returns its ID.
func (t *Transcript) AppendUser(text string) string {
	id := uuid.NewString()
	t.messages = append(t.messages, Message{ID: id, Role: llm.RoleUser, Text: text})
	return id
}

// BeginModel opens an empty model message that subsequent fragments
// will fill, and returns its ID.
func (t *Transcript) BeginModel() string {
	id := uuid.NewString()
	t.messages = append(t.messages, Message{ID: id, Role: llm.RoleModel})
	t.seenURIs = map[string]bool{}
	return id
}

// AppendFragment folds a streamed fragment into the open model
// message. Sources are deduplicated by URI across the whole response.
func (t *Transcript) AppendFragment(frag llm.Fragment) {
	last := t.last()
	if last == nil || last.Role != llm.RoleModel {
		return
	}
	last.Text += frag.Text
	for _, src := range frag.Sources {
		if src.URI == "" || t.seenURIs[src.URI] {
			continue
		}
		t.seenURIs[src.URI] = true
		last.Sources = append(last.Sources, src)
	}
}

// Fail marks the open model message as failed and appends an apology
// so the transcript stays usable.
func (t *Transcript) Fail() {
	last := t.last()
	if last == nil || last.Role != llm.RoleModel {
		return
	}
	last.Failed = true
	if last.Text != "" {
		last.Text += "\n\n"
	}
	last.Text += "Sorry, I encountered an error. Please try again."
}

// Clear empties the transcript, e.g. when the topic changes.
func (t *Transcript) Clear() {
	t.messages = nil
	t.seenURIs = map[string]bool{}
}

func (t *Transcript) last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return &t.messages[len(t.messages)-1]
}
