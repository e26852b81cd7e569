package llm

import (
	"fmt"
	"os"
	"strings"
)

// ProviderKind names a supported backend.
type ProviderKind string

const (
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderOpenAI    ProviderKind = "openai"
	ProviderGemini    ProviderKind = "gemini"
)

// Config holds provider selection and credentials. Built from the
// environment; CYBERPATH_* variables take precedence over the
// provider SDKs' conventional key variables.
type Config struct {
	Provider  ProviderKind
	APIKey    string
	BaseURL   string
	FastModel string
	DeepModel string

	// MaxRetries bounds retries when establishing a stream.
	MaxRetries int
}

// ConfigFromEnv builds a Config from environment variables.
//
//	CYBERPATH_MENTOR_PROVIDER    anthropic | openai | gemini
//	CYBERPATH_MENTOR_API_KEY     overrides the provider's key variable
//	CYBERPATH_MENTOR_BASE_URL    OpenAI-compatible endpoint override
//	CYBERPATH_MENTOR_FAST_MODEL  model for the fast tier
//	CYBERPATH_MENTOR_DEEP_MODEL  model for the deep tier
//
// When CYBERPATH_MENTOR_PROVIDER is unset, DiscoverConfig picks the
// first provider whose conventional key variable is set.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Provider:   ProviderKind(strings.ToLower(os.Getenv("CYBERPATH_MENTOR_PROVIDER"))),
		APIKey:     os.Getenv("CYBERPATH_MENTOR_API_KEY"),
		BaseURL:    os.Getenv("CYBERPATH_MENTOR_BASE_URL"),
		FastModel:  os.Getenv("CYBERPATH_MENTOR_FAST_MODEL"),
		DeepModel:  os.Getenv("CYBERPATH_MENTOR_DEEP_MODEL"),
		MaxRetries: 2,
	}

	if cfg.Provider == "" {
		discovered, ok := DiscoverConfig()
		if !ok {
			return Config{}, ErrNotConfigured
		}
		cfg.Provider = discovered.Provider
		if cfg.APIKey == "" {
			cfg.APIKey = discovered.APIKey
		}
		return cfg, cfg.Validate()
	}

	if cfg.APIKey == "" {
		cfg.APIKey = conventionalKey(cfg.Provider)
	}
	return cfg, cfg.Validate()
}

// DiscoverConfig probes the conventional key variables in a fixed
// order and returns a config for the first provider found.
func DiscoverConfig() (Config, bool) {
	for _, kind := range []ProviderKind{ProviderAnthropic, ProviderOpenAI, ProviderGemini} {
		if key := conventionalKey(kind); key != "" {
			return Config{Provider: kind, APIKey: key, MaxRetries: 2}, true
		}
	}
	return Config{}, false
}

func conventionalKey(kind ProviderKind) string {
	switch kind {
	case ProviderAnthropic:
		return os.Getenv("ANTHROPIC_API_KEY")
	case ProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	case ProviderGemini:
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return os.Getenv("GOOGLE_API_KEY")
	}
	return ""
}

// Validate checks that the config names a known provider and carries a key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s: missing API key: %w", c.Provider, ErrNotConfigured)
	}
	return nil
}
