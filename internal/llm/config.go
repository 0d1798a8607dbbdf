package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures a vendor. Field tags let viper decode it
// directly.
type Config struct {
	// Provider is "anthropic", "openai", "gemini", "openrouter" or "mock".
	Provider string `mapstructure:"provider"`

	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout bounds one classification, retries included.
	Timeout time.Duration `mapstructure:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultConfig picks small, cheap models for every vendor and leaves
// Provider empty.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// DiscoverConfig selects the first vendor whose standard API key
// variable is set, in the order gemini, openai, anthropic, openrouter.
func DiscoverConfig(base Config) (Config, bool) {
	for _, name := range discoveryOrder {
		v := vendors[name]
		if key := os.Getenv(v.env); key != "" {
			cfg := base
			cfg.Provider = name
			*v.key(&cfg) = key
			return cfg, true
		}
	}
	return base, false
}

// Validate checks that the selected vendor has an API key and that the
// retry settings are usable.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		return fmt.Errorf("no LLM provider configured (set SHOWDOWN_LLM_PROVIDER or a provider API key)")
	case mockVendor:
	default:
		v, ok := vendors[c.Provider]
		if !ok {
			return fmt.Errorf("unknown LLM provider: %q", c.Provider)
		}
		if *v.key(&c) == "" {
			return fmt.Errorf("the %s provider needs an API key: set SHOWDOWN_LLM_%s_API_KEY or %s",
				c.Provider, strings.ToUpper(c.Provider), v.env)
		}
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
