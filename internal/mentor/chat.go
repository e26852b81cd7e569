package mentor

import (
	"context"
	"errors"
	"strings"

	"github.com/abhisek/cyberpath/internal/llm"
)

// ErrBusy is returned by Ask while a previous response is streaming.
var ErrBusy = errors.New("mentor request already in flight")

// Chat drives one mentor conversation against a provider. It allows a
// single request in flight; the UI disables send until the stream
// finishes. Not safe for concurrent use.
type Chat struct {
	provider   llm.Provider
	transcript *Transcript
	busy       bool
}

// NewChat creates a chat over the given provider.
func NewChat(provider llm.Provider) *Chat {
	return &Chat{provider: provider, transcript: NewTranscript()}
}

// Transcript returns the chat history.
func (c *Chat) Transcript() *Transcript { return c.transcript }

// Busy reports whether a response is currently streaming.
func (c *Chat) Busy() bool { return c.busy }

// Ask records the question, opens a model message, and starts a
// streaming response. The caller drains the returned stream and feeds
// it back through Advance, then closes the exchange with Finish.
func (c *Chat) Ask(ctx context.Context, pctx PromptContext, question string, tier llm.Tier) (llm.Stream, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New("empty question")
	}
	if c.busy {
		return nil, ErrBusy
	}

	prompt := BuildPrompt(pctx, question)
	req := llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Tier:     tier,
	}

	c.transcript.AppendUser(question)
	stream, err := c.provider.GenerateStream(ctx, req)
	if err != nil {
		c.transcript.BeginModel()
		c.transcript.Fail()
		return nil, err
	}

	c.busy = true
	c.transcript.BeginModel()
	return stream, nil
}

// Advance folds one received fragment into the transcript.
func (c *Chat) Advance(frag llm.Fragment) {
	c.transcript.AppendFragment(frag)
}

// Finish closes the in-flight exchange. A non-nil err (anything but
// io.EOF, which callers translate to nil) marks the model message as
// failed; the transcript stays usable either way.
func (c *Chat) Finish(err error) {
	if err != nil {
		c.transcript.Fail()
	}
	c.busy = false
}

// Reset clears the transcript, e.g. when the topic changes.
func (c *Chat) Reset() {
	if c.busy {
		return
	}
	c.transcript.Clear()
}
