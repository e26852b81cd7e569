package llm

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
)

// anthropicModels maps tiers to Anthropic model IDs.
var anthropicModels = map[Tier]string{
	TierFast: "claude-haiku-4-5-20251001",
	TierDeep: "claude-sonnet-4-20250514",
}

const anthropicDefaultMaxTokens = 2048

// AnthropicProvider implements Provider using the Anthropic SDK.
type AnthropicProvider struct {
	client *anthropic.Client
	models map[Tier]string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(cfg Config) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &AnthropicProvider{
		client: &client,
		models: tierModels(anthropicModels, cfg),
	}, nil
}

func (p *AnthropicProvider) Name() string { return string(ProviderAnthropic) }

func (p *AnthropicProvider) ModelID(tier Tier) string {
	return p.models[resolveTier(tier)]
}

func (p *AnthropicProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.ModelID(req.Tier)),
		MaxTokens: int64(maxTokens),
		Messages:  buildAnthropicMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	return &anthropicStream{
		stream: p.client.Messages.NewStreaming(ctx, params),
	}, nil
}

type anthropicStream struct {
	stream *ssestream.Stream[anthropic.MessageStreamEventUnion]
}

func (s *anthropicStream) Recv() (Fragment, error) {
	for s.stream.Next() {
		event := s.stream.Current()
		delta, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
		if !ok {
			continue
		}
		if text, ok := delta.Delta.AsAny().(anthropic.TextDelta); ok && text.Text != "" {
			return Fragment{Text: text.Text}, nil
		}
	}
	if err := s.stream.Err(); err != nil {
		return Fragment{}, mapAnthropicError(err)
	}
	return Fragment{}, io.EOF
}

func (s *anthropicStream) Close() error {
	return s.stream.Close()
}

func buildAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(msgs))
	for i, m := range msgs {
		role := anthropic.MessageParamRoleUser
		if m.Role == RoleModel {
			role = anthropic.MessageParamRoleAssistant
		}
		out[i] = anthropic.MessageParam{
			Role: role,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(m.Content),
			},
		}
	}
	return out
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Provider: string(ProviderAnthropic), Err: err}
		case apiErr.StatusCode >= 500:
			return &ErrProviderUnavailable{Provider: string(ProviderAnthropic), Err: err}
		}
	}
	return &ErrProviderUnavailable{Provider: string(ProviderAnthropic), Err: err}
}

// tierModels merges per-tier config overrides onto provider defaults.
func tierModels(defaults map[Tier]string, cfg Config) map[Tier]string {
	models := map[Tier]string{
		TierFast: defaults[TierFast],
		TierDeep: defaults[TierDeep],
	}
	if cfg.FastModel != "" {
		models[TierFast] = cfg.FastModel
	}
	if cfg.DeepModel != "" {
		models[TierDeep] = cfg.DeepModel
	}
	return models
}
