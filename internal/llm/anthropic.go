package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicAliases = map[string]string{
	"claude-haiku":     "claude-haiku-4-5-20251001",
	"claude-haiku-3.5": "claude-3-5-haiku-latest",
	"claude-sonnet":    "claude-sonnet-4-20250514",
}

// AnthropicProvider talks to the Anthropic Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(cfg AnthropicConfig, opts ...option.RequestOption) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	client := anthropic.NewClient(append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)...)
	return &AnthropicProvider{
		client: &client,
		model:  alias(cfg.Model, anthropicAliases),
	}, nil
}

func (p *AnthropicProvider) Complete(ctx context.Context, pr Prompt) (*Completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(pr.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(pr.Input)),
		},
	}
	if pr.Instructions != "" {
		params.System = []anthropic.TextBlockParam{{Text: pr.Instructions}}
	}
	if pr.Temperature != nil {
		params.Temperature = anthropic.Float(*pr.Temperature)
	}
	if pr.Output != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: pr.Output.Root},
		}
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, anthropicError(err)
	}

	text, ok := firstText(msg)
	if !ok {
		return nil, badOutput(nil, fmt.Errorf("no text block in response"))
	}

	stop := StopEnd
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		stop = StopLength
	}
	return settle(pr, &Completion{
		JSON:     json.RawMessage(text),
		Tokens:   Tokens{In: int(msg.Usage.InputTokens), Out: int(msg.Usage.OutputTokens)},
		ServedBy: string(msg.Model),
		Stop:     stop,
	})
}

func (p *AnthropicProvider) Model() string {
	return p.model
}

func firstText(msg *anthropic.Message) (string, bool) {
	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, true
		}
	}
	return "", false
}

func anthropicError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return fromStatus(0, nil, err)
	}
	var header http.Header
	if apiErr.Response != nil {
		header = apiErr.Response.Header
	}
	return fromStatus(apiErr.StatusCode, header, err)
}
