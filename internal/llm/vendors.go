package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const mockVendor = "mock"

// vendor describes one hosted API.
type vendor struct {
	// env is the vendor's conventional API key variable.
	env string

	// key points at the API key field in a Config.
	key func(*Config) *string

	build func(context.Context, Config) (Provider, error)
}

var vendors = map[string]vendor{
	"anthropic": {
		env: "ANTHROPIC_API_KEY",
		key: func(c *Config) *string { return &c.Anthropic.APIKey },
		build: func(_ context.Context, c Config) (Provider, error) {
			return NewAnthropicProvider(c.Anthropic)
		},
	},
	"openai": {
		env: "OPENAI_API_KEY",
		key: func(c *Config) *string { return &c.OpenAI.APIKey },
		build: func(_ context.Context, c Config) (Provider, error) {
			return NewOpenAIProvider(c.OpenAI)
		},
	},
	"gemini": {
		env: "GEMINI_API_KEY",
		key: func(c *Config) *string { return &c.Gemini.APIKey },
		build: func(ctx context.Context, c Config) (Provider, error) {
			return NewGeminiProvider(ctx, c.Gemini)
		},
	},
	"openrouter": {
		env: "OPENROUTER_API_KEY",
		key: func(c *Config) *string { return &c.OpenRouter.APIKey },
		build: func(_ context.Context, c Config) (Provider, error) {
			return NewOpenRouterProvider(c.OpenRouter)
		},
	},
}

var discoveryOrder = []string{"gemini", "openai", "anthropic", "openrouter"}

// NewProvider builds the configured vendor wrapped as
// caller -> retry -> logging -> vendor, so every attempt is logged.
// The mock vendor is returned bare with an empty script.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Provider == mockVendor {
		return NewMockProvider(), nil
	}

	base, err := vendors[cfg.Provider].build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, cfg.Provider, logger), cfg.Retry), nil
}
