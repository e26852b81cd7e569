package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"

	"google.golang.org/genai"
)

// geminiModels maps tiers to Gemini model IDs.
var geminiModels = map[Tier]string{
	TierFast: "gemini-2.0-flash",
	TierDeep: "gemini-2.0-pro",
}

// GeminiProvider implements Provider using the Google Gemini SDK.
// The fast tier runs with the Google Search tool so answers carry
// live web citations.
type GeminiProvider struct {
	client *genai.Client
	models map[Tier]string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		models: tierModels(geminiModels, cfg),
	}, nil
}

func (p *GeminiProvider) Name() string { return string(ProviderGemini) }

func (p *GeminiProvider) ModelID(tier Tier) string {
	return p.models[resolveTier(tier)]
}

func (p *GeminiProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		config.Temperature = &temp
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	switch resolveTier(req.Tier) {
	case TierFast:
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	case TierDeep:
		config.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](32768),
		}
	}

	contents := buildGeminiContents(req.Messages)
	seq := p.client.Models.GenerateContentStream(ctx, p.ModelID(req.Tier), contents, config)
	next, stop := iter.Pull2(seq)
	return &geminiStream{next: next, stop: stop}, nil
}

type geminiStream struct {
	next func() (*genai.GenerateContentResponse, error, bool)
	stop func()
}

func (s *geminiStream) Recv() (Fragment, error) {
	resp, err, ok := s.next()
	if !ok {
		return Fragment{}, io.EOF
	}
	if err != nil {
		return Fragment{}, mapGeminiError(err)
	}
	return Fragment{
		Text:    resp.Text(),
		Sources: geminiSources(resp),
	}, nil
}

func (s *geminiStream) Close() error {
	s.stop()
	return nil
}

// geminiSources pulls web citations out of search grounding metadata.
func geminiSources(resp *genai.GenerateContentResponse) []Source {
	var sources []Source
	for _, cand := range resp.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			sources = append(sources, Source{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}
	return sources
}

func buildGeminiContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == RoleModel {
			role = "model"
		}
		out[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		}
	}
	return out
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return &ErrRateLimit{Provider: string(ProviderGemini), Err: err}
		case apiErr.Code >= 500:
			return &ErrProviderUnavailable{Provider: string(ProviderGemini), Err: err}
		}
	}
	return &ErrProviderUnavailable{Provider: string(ProviderGemini), Err: err}
}
