// Package llm asks hosted language models for short, schema-constrained
// JSON answers. Every call is single-turn: fixed instructions plus one
// piece of input text.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one hosted model behind a vendor SDK.
type Provider interface {
	// Complete sends p and returns the model's answer. When p.Output is
	// set the answer has already been checked against it.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// Model is the model identifier requests are sent to.
	Model() string
}

// Prompt is a single-turn request.
type Prompt struct {
	// Instructions go in the system slot.
	Instructions string

	// Input is the user turn.
	Input string

	// Output, when set, is enforced through the vendor's structured
	// output mode and validated on return.
	Output *Schema

	MaxTokens int

	// Temperature nil leaves the vendor default. Use Temp to set one,
	// including 0.
	Temperature *float64
}

// Temp returns a sampling temperature for Prompt.Temperature.
func Temp(t float64) *float64 { return &t }

// Chars is the prompt size in bytes. Logged instead of the text itself.
func (p Prompt) Chars() int {
	return len(p.Instructions) + len(p.Input)
}

// StopReason says why the model stopped generating.
type StopReason string

const (
	StopEnd    StopReason = "end"
	StopLength StopReason = "max_tokens"
)

// Completion is a model answer.
type Completion struct {
	JSON     json.RawMessage
	Tokens   Tokens
	ServedBy string
	Stop     StopReason
}

// Tokens is the usage reported for one request.
type Tokens struct {
	In  int
	Out int
}

func (t Tokens) Total() int {
	return t.In + t.Out
}

// settle runs the checks shared by every vendor adapter.
func settle(p Prompt, c *Completion) (*Completion, error) {
	if c.Stop == StopLength {
		return nil, &Error{Kind: KindTruncated, Raw: c.JSON}
	}
	if err := p.Output.Check(c.JSON); err != nil {
		return nil, err
	}
	return c, nil
}

// alias maps a friendly model name through table. Unknown names are
// used as given.
func alias(name string, table map[string]string) string {
	if id, ok := table[name]; ok {
		return id
	}
	return name
}
