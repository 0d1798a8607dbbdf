package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_Success(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(Reply{
		JSON:   json.RawMessage(`{"label":"NEGATIVE","confidence":0.95}`),
		Tokens: Tokens{In: 12, Out: 7},
	})
	p := WithLogging(mock, "mock", zap.New(core))

	ctx := WithPurpose(context.Background(), PurposeClassify)
	prompt := Prompt{Instructions: "classify", Input: "I hate Mondays"}
	if _, err := p.Complete(ctx, prompt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.DebugLevel || e.LoggerName != "llm" {
		t.Errorf("unexpected entry %s %q", e.Level, e.LoggerName)
	}
	fields := e.ContextMap()
	if fields["purpose"] != "classify" {
		t.Errorf("purpose = %v, want classify", fields["purpose"])
	}
	if fields["input_tokens"] != int64(12) {
		t.Errorf("input_tokens = %v, want 12", fields["input_tokens"])
	}
	if fields["prompt_chars"] != int64(prompt.Chars()) {
		t.Errorf("prompt_chars = %v", fields["prompt_chars"])
	}
	if _, ok := fields["cost_usd"]; ok {
		t.Error("mock has no price")
	}
	for _, f := range e.Context {
		if f.String == "I hate Mondays" {
			t.Error("player text must not be logged")
		}
	}
}

func TestLogging_FailureIsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(Reply{Err: &Error{Kind: KindRateLimited, Err: errors.New("429")}})
	p := WithLogging(mock, "mock", zap.New(core))

	if _, err := p.Complete(context.Background(), Prompt{}); err == nil {
		t.Fatal("expected error")
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	fields := warnings[0].ContextMap()
	if fields["purpose"] != "unspecified" {
		t.Errorf("expected unspecified purpose, got %v", fields["purpose"])
	}
	if fields["kind"] != "rate limited" {
		t.Errorf("expected kind field, got %v", fields["kind"])
	}
}

func TestLogging_NilLogger(t *testing.T) {
	p := WithLogging(NewMockProvider(Reply{JSON: json.RawMessage(`{}`)}), "mock", nil)
	if _, err := p.Complete(context.Background(), Prompt{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Model() != "mock" {
		t.Fatalf("expected mock model, got %q", p.Model())
	}
}

func TestPriceOf(t *testing.T) {
	p, ok := PriceOf("gpt-4o-mini")
	if !ok {
		t.Fatal("expected a price for gpt-4o-mini")
	}
	if got := p.Cost(Tokens{In: 1_000_000, Out: 1_000_000}); got != 0.75 {
		t.Fatalf("Cost() = %v, want 0.75", got)
	}
	if _, ok := PriceOf("no-such-model"); ok {
		t.Fatal("expected no price for an unknown model")
	}
}
