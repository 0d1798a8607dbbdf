package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fortio.org/safecast"
	"google.golang.org/genai"
)

var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-lite":  "gemini-2.0-flash-lite",
	"gemini-pro":   "gemini-2.5-pro",
}

// GeminiProvider talks to the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: alias(cfg.Model, geminiAliases)}, nil
}

func (p *GeminiProvider) Complete(ctx context.Context, pr Prompt) (*Completion, error) {
	maxTokens, err := safecast.Conv[int32](pr.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("max tokens: %w", err)
	}
	config := &genai.GenerateContentConfig{MaxOutputTokens: maxTokens}
	if pr.Temperature != nil {
		config.Temperature = genai.Ptr(float32(*pr.Temperature))
	}
	if pr.Instructions != "" {
		config.SystemInstruction = genai.NewContentFromText(pr.Instructions, genai.RoleUser)
	}
	if pr.Output != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = geminiSchema(pr.Output.Root)
	}

	contents := []*genai.Content{genai.NewContentFromText(pr.Input, genai.RoleUser)}
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, geminiError(err)
	}

	c := &Completion{
		JSON:     json.RawMessage(result.Text()),
		ServedBy: p.model,
		Stop:     StopEnd,
	}
	if len(result.Candidates) > 0 && result.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		c.Stop = StopLength
	}
	if u := result.UsageMetadata; u != nil {
		c.Tokens = Tokens{In: int(u.PromptTokenCount), Out: int(u.CandidatesTokenCount)}
	}
	return settle(pr, c)
}

func (p *GeminiProvider) Model() string {
	return p.model
}

// geminiSchema converts the subset of JSON Schema the label schemas use
// into genai's own schema type. Bounds and additionalProperties are
// dropped; the answer is validated against the full schema afterwards.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{Type: geminiType(def["type"])}
	if desc, ok := def["description"].(string); ok {
		s.Description = desc
	}
	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				s.Properties[name] = geminiSchema(sub)
			}
		}
	}
	s.Required = stringList(def["required"])
	s.Enum = stringList(def["enum"])
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	return s
}

func geminiType(v any) genai.Type {
	switch v {
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// stringList accepts both []any and []string.
func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fromStatus(apiErr.Code, nil, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return fromStatus(apiErrPtr.Code, nil, err)
	}
	return fromStatus(0, nil, err)
}
