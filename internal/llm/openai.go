package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

var openaiAliases = map[string]string{
	"gpt-mini": "gpt-4o-mini",
	"gpt-nano": "gpt-4.1-nano",
}

// OpenAIProvider talks to the Chat Completions API or any compatible
// endpoint set through BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	return newOpenAICompatible(cfg.APIKey, cfg.BaseURL, alias(cfg.Model, openaiAliases), nil), nil
}

// newOpenAICompatible builds a provider for any endpoint speaking the
// OpenAI wire format. A nil client uses http.DefaultClient.
func newOpenAICompatible(apiKey, baseURL, model string, hc *http.Client) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if hc != nil {
		config.HTTPClient = hc
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: model}
}

func (p *OpenAIProvider) Complete(ctx context.Context, pr Prompt) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:               p.model,
		MaxCompletionTokens: pr.MaxTokens,
	}
	if pr.Temperature != nil {
		req.Temperature = openaiTemperature(*pr.Temperature)
	}
	if pr.Instructions != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: pr.Instructions,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: pr.Input,
	})

	if pr.Output != nil {
		schema, err := json.Marshal(pr.Output.Root)
		if err != nil {
			return nil, fmt.Errorf("marshal schema %s: %w", pr.Output.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        pr.Output.Name,
				Description: pr.Output.Description,
				Schema:      json.RawMessage(schema),
				Strict:      true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, openaiError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, badOutput(nil, fmt.Errorf("no choices in response"))
	}

	choice := resp.Choices[0]
	stop := StopEnd
	if choice.FinishReason == openai.FinishReasonLength {
		stop = StopLength
	}
	return settle(pr, &Completion{
		JSON:     json.RawMessage(choice.Message.Content),
		Tokens:   Tokens{In: resp.Usage.PromptTokens, Out: resp.Usage.CompletionTokens},
		ServedBy: resp.Model,
		Stop:     stop,
	})
}

func (p *OpenAIProvider) Model() string {
	return p.model
}

func openaiError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fromStatus(apiErr.HTTPStatusCode, nil, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fromStatus(reqErr.HTTPStatusCode, nil, err)
	}
	return fromStatus(0, nil, err)
}

// openaiTemperature maps t onto the request field. The field is omitted
// when zero, so an explicit 0 goes out as the smallest positive float32.
func openaiTemperature(t float64) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
