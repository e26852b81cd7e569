// Package llm provides a streaming abstraction over LLM providers
// (Anthropic, OpenAI, Gemini) for the mentor chat.
package llm

import (
	"context"
)

// Role identifies the author of a message in a conversation.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single turn in a conversation.
type Message struct {
	Role    Role
	Content string
}

// Tier selects the model quality/latency trade-off for a request.
type Tier string

const (
	// TierFast favors low latency and, where the provider supports it,
	// live web grounding.
	TierFast Tier = "fast"
	// TierDeep favors reasoning depth over latency.
	TierDeep Tier = "deep"
)

// Request describes a streaming generation request.
type Request struct {
	// System is the system prompt, prepended to the conversation.
	System string
	// Messages is the conversation so far, oldest first. The last
	// message must be from the user.
	Messages []Message
	// Tier selects the model. Empty defaults to TierFast.
	Tier Tier
	// MaxTokens caps the response length. Zero uses the provider default.
	MaxTokens int
	// Temperature controls sampling randomness.
	Temperature float64
}

// Source is a web citation attached to a streamed fragment.
type Source struct {
	URI   string
	Title string
}

// Fragment is one incremental piece of a streamed response. Either
// field may be empty; Sources arrive whenever the provider surfaces
// grounding metadata, not necessarily alongside text.
type Fragment struct {
	Text    string
	Sources []Source
}

// Stream yields response fragments as they arrive. Recv returns io.EOF
// after the final fragment of a successful response; any other error
// means the stream failed and no further fragments will arrive. Close
// releases resources and may be called at any time, including to abandon
// a stream early.
type Stream interface {
	Recv() (Fragment, error)
	Close() error
}

// Provider is a streaming LLM backend.
type Provider interface {
	// GenerateStream opens a streaming response for req. Errors from
	// establishing the stream are returned here; errors mid-stream come
	// from Stream.Recv.
	GenerateStream(ctx context.Context, req Request) (Stream, error)
	// Name returns the provider identifier, e.g. "anthropic".
	Name() string
	// ModelID returns the model used for the given tier.
	ModelID(tier Tier) string
}

// resolveTier applies the default tier.
func resolveTier(t Tier) Tier {
	if t == "" {
		return TierFast
	}
	return t
}
