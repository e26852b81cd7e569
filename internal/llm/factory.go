package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/cyberpath/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.MentorEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	retryCfg := DefaultRetryConfig()
	if cfg.MaxRetries > 0 {
		retryCfg.MaxAttempts = cfg.MaxRetries + 1
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, retryCfg), nil
}
