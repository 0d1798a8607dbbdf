package llm

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
)

// Reply is one scripted answer for MockProvider.
type Reply struct {
	JSON   json.RawMessage
	Tokens Tokens
	Err    error
}

// MockProvider replays scripted replies in order and records prompts.
// Once the script runs out every call fails as unavailable.
type MockProvider struct {
	mu      sync.Mutex
	script  []Reply
	prompts []Prompt
}

func NewMockProvider(script ...Reply) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Complete(_ context.Context, p Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.prompts = append(m.prompts, p)
	if len(m.script) == 0 {
		return nil, &Error{Kind: KindUnavailable}
	}

	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Completion{JSON: next.JSON, Tokens: next.Tokens, ServedBy: "mock", Stop: StopEnd}, nil
}

func (m *MockProvider) Model() string {
	return "mock"
}

// Queue appends replies to the script.
func (m *MockProvider) Queue(replies ...Reply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, replies...)
}

// Prompts returns the prompts received so far.
func (m *MockProvider) Prompts() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.prompts)
}
