package llm

import (
	"context"
	"errors"
	"io"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps tiers to OpenAI model IDs.
var openaiModels = map[Tier]string{
	TierFast: "gpt-4o-mini",
	TierDeep: "gpt-4o",
}

// OpenAIProvider implements Provider using the OpenAI SDK.
// It also supports OpenRouter and other OpenAI-compatible APIs via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	models map[Tier]string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg Config) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		models: tierModels(openaiModels, cfg),
	}, nil
}

func (p *OpenAIProvider) Name() string { return string(ProviderOpenAI) }

func (p *OpenAIProvider) ModelID(tier Tier) string {
	return p.models[resolveTier(tier)]
}

func (p *OpenAIProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:               p.ModelID(req.Tier),
		Messages:            buildOpenAIMessages(req),
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
		Stream:              true,
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	return &openaiStream{stream: stream}, nil
}

type openaiStream struct {
	stream *openai.ChatCompletionStream
}

func (s *openaiStream) Recv() (Fragment, error) {
	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			return Fragment{}, io.EOF
		}
		if err != nil {
			return Fragment{}, mapOpenAIError(err)
		}
		frag, err := openaiFragment(resp)
		if err != nil {
			return Fragment{}, err
		}
		if frag.Text != "" {
			return frag, nil
		}
	}
}

// openaiFragment converts one stream chunk into a fragment. A chunk
// with no choices is unusable and fails the stream.
func openaiFragment(resp openai.ChatCompletionStreamResponse) (Fragment, error) {
	if len(resp.Choices) == 0 {
		return Fragment{}, &ErrInvalidResponse{
			Err: errors.New("stream chunk has no choices"),
		}
	}
	return Fragment{Text: resp.Choices[0].Delta.Content}, nil
}

func (s *openaiStream) Close() error {
	return s.stream.Close()
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleModel {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return msgs
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Provider: string(ProviderOpenAI), Err: err}
		case apiErr.HTTPStatusCode >= 500:
			return &ErrProviderUnavailable{Provider: string(ProviderOpenAI), Err: err}
		}
	}
	return &ErrProviderUnavailable{Provider: string(ProviderOpenAI), Err: err}
}
