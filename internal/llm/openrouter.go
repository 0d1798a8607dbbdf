package llm

import (
	"errors"
	"net/http"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// openRouterTitle names the app on OpenRouter's usage dashboard.
	openRouterTitle = "Sarcasm Showdown"
)

// NewOpenRouterProvider targets OpenRouter's OpenAI-compatible API.
// Model names are OpenRouter slugs and pass through unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	hc := &http.Client{Transport: titled{base: http.DefaultTransport}}
	return newOpenAICompatible(cfg.APIKey, baseURL, cfg.Model, hc), nil
}

// titled adds OpenRouter's app attribution header.
type titled struct {
	base http.RoundTripper
}

func (t titled) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", openRouterTitle)
	return t.base.RoundTrip(r)
}
