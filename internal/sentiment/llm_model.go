package sentiment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/showdown/internal/llm"
)

const (
	llmMaxTokens = 64

	// probeText is classified once at load time so a bad key or model
	// name shows up before the first round.
	probeText = "What a lovely day."
)

// LLMModel classifies text with a hosted model through an llm.Provider.
type LLMModel struct {
	provider llm.Provider
	timeout  time.Duration
}

var _ Model = (*LLMModel)(nil)

// labelOutput is the raw LLM response before normalization.
type labelOutput struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// NewLLMModel creates a model on top of provider. A zero timeout means
// the caller's context alone bounds each request.
func NewLLMModel(provider llm.Provider, timeout time.Duration) *LLMModel {
	return &LLMModel{provider: provider, timeout: timeout}
}

// LLMLoader returns a Loader that builds the configured provider and,
// when probe is set, runs one warm-up classification.
func LLMLoader(cfg llm.Config, probe bool, logger *zap.Logger) Loader {
	return func(ctx context.Context) (Model, error) {
		provider, err := llm.NewProvider(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		m := NewLLMModel(provider, cfg.Timeout)
		if probe {
			if _, err := m.Predict(llm.WithPurpose(ctx, llm.PurposeProbe), probeText); err != nil {
				return nil, fmt.Errorf("probe %s: %w", provider.Model(), err)
			}
		}
		return m, nil
	}
}

// Name identifies the hosted model.
func (m *LLMModel) Name() string {
	return "llm:" + m.provider.Model()
}

// Predict asks the hosted model for a label.
func (m *LLMModel) Predict(ctx context.Context, text string) (Prediction, error) {
	if _, ok := llm.PurposeFrom(ctx); !ok {
		ctx = llm.WithPurpose(ctx, llm.PurposeClassify)
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	c, err := m.provider.Complete(ctx, llm.Prompt{
		Instructions: systemPrompt,
		Input:        buildUserMessage(text),
		Output:       LabelSchema,
		MaxTokens:    llmMaxTokens,
		Temperature:  llm.Temp(0),
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("LLM classification failed: %w", err)
	}

	var out labelOutput
	if err := LabelSchema.Decode(c.JSON, &out); err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: out.Label, Confidence: out.Confidence}, nil
}
