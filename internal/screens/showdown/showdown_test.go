package showdown

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/screens/chart"
	"github.com/abhisek/showdown/internal/sentiment"
)

// mapClassifier returns canned results keyed by text.
type mapClassifier map[string]sentiment.Result

func (m mapClassifier) Classify(_ context.Context, text string) sentiment.Result {
	if r, ok := m[text]; ok {
		return r
	}
	return sentiment.Failed(&sentiment.ClassificationError{Err: errors.New("model exploded")})
}

func newTestScreen(loadErr error) *ShowdownScreen {
	classifier := mapClassifier{
		"Oh great, another meeting...": {Label: sentiment.LabelPositive, Confidence: 0.82},
		"I hate Mondays":               {Label: sentiment.LabelNegative, Confidence: 0.95},
	}
	ctrl := game.NewController(classifier, nil)
	return New(context.Background(), ctrl, "test-model", loadErr)
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// analyze types text, presses Enter and delivers the classification.
func analyze(t *testing.T, s *ShowdownScreen, text string) {
	t.Helper()
	s.input.SetValue(text)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from Enter")
	}
	if !s.Busy() {
		t.Fatal("expected screen to be busy while analyzing")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok || len(batch) == 0 {
		t.Fatalf("expected a batch of commands, got %T", cmd())
	}
	// The first command is the classification; the second is the spinner tick.
	s.Update(batch[0]())
	if s.Busy() {
		t.Fatal("expected busy to clear after the result arrived")
	}
}

func TestShowdown_EmptyInputIgnored(t *testing.T) {
	s := newTestScreen(nil)
	s.input.SetValue("   ")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for blank input")
	}
	if s.Busy() {
		t.Error("blank input should not start an analysis")
	}
}

func TestShowdown_FoolTheAI(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "Oh great, another meeting...")

	view := s.View(100, 40)
	if !strings.Contains(view, "POSITIVE (0.82 confidence)") {
		t.Errorf("expected result in view:\n%s", view)
	}
	if s.sarcasm.Value() != "No" {
		t.Errorf("sarcasm should default to No, got %q", s.sarcasm.Value())
	}

	s.Update(specialKey(tea.KeyLeft))
	if s.sarcasm.Value() != "Yes" {
		t.Fatalf("expected Yes after left, got %q", s.sarcasm.Value())
	}
	s.Update(specialKey(tea.KeyTab))

	state := s.controller.State()
	if state.Score() != 10 || state.RoundsPlayed() != 1 {
		t.Errorf("score=%d rounds=%d, want 10 and 1", state.Score(), state.RoundsPlayed())
	}
	if s.notice != game.VerdictFooled.Message() {
		t.Errorf("notice = %q", s.notice)
	}
	if s.input.Value() != "" {
		t.Error("input should clear after scoring")
	}
	if s.sarcasm.Value() != "No" {
		t.Error("sarcasm choice should reset after scoring")
	}
}

func TestShowdown_JudgmentAccepted(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "I hate Mondays")
	s.Update(specialKey(tea.KeyTab))

	state := s.controller.State()
	if state.Score() != 0 || state.RoundsPlayed() != 1 {
		t.Errorf("score=%d rounds=%d, want 0 and 1", state.Score(), state.RoundsPlayed())
	}
	if s.notice != game.VerdictAccepted.Message() {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestShowdown_SubmitWithoutAnalysisIgnored(t *testing.T) {
	s := newTestScreen(nil)
	s.Update(specialKey(tea.KeyTab))

	if s.controller.State().RoundsPlayed() != 0 {
		t.Error("submit without analysis should not count a round")
	}
	if s.notice != "" {
		t.Errorf("unexpected notice %q", s.notice)
	}
}

func TestShowdown_BusyBlocksActions(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "I hate Mondays")

	s.input.SetValue("Oh great, another meeting...")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil || !s.Busy() {
		t.Fatal("expected second analysis to start")
	}

	if _, cmd := s.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("Enter while busy should be ignored")
	}
	s.Update(specialKey(tea.KeyTab))
	s.Update(ctrlKey('r'))
	if _, cmd := s.Update(ctrlKey('p')); cmd != nil {
		t.Error("plot while busy should be ignored")
	}

	state := s.controller.State()
	if state.RoundsPlayed() != 0 {
		t.Error("submit while busy should be ignored")
	}
	if _, ok := state.Pending(); !ok {
		t.Error("reset while busy should be ignored")
	}
}

func TestShowdown_ClassificationError(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "something unknown")

	if !strings.Contains(s.errMsg, "analysis failed") {
		t.Errorf("errMsg = %q", s.errMsg)
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "ERROR (0.00 confidence)") {
		t.Errorf("expected ERROR result in view:\n%s", view)
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyTab))
	if got := s.controller.State().Score(); got != -5 {
		t.Errorf("score = %d, want -5", got)
	}
	if s.errMsg != "" {
		t.Error("error line should clear after scoring")
	}
}

func TestShowdown_LoadErrorBanner(t *testing.T) {
	s := newTestScreen(&sentiment.ModelLoadError{Model: "llm", Err: errors.New("no key")})

	if !strings.Contains(s.View(100, 40), "failed to load model llm") {
		t.Error("expected load error banner")
	}

	analyze(t, s, "I hate Mondays")
	if strings.Contains(s.View(100, 40), "failed to load model") {
		t.Error("load error banner should only be shown once")
	}
}

func TestShowdown_Reset(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "Oh great, another meeting...")
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyTab))

	s.Update(ctrlKey('r'))
	state := s.controller.State()
	if state.Score() != 0 || state.RoundsPlayed() != 0 || len(state.History()) != 0 {
		t.Error("expected a clean state after reset")
	}
	if !strings.Contains(s.notice, "reset") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestShowdown_PlotPushesChart(t *testing.T) {
	s := newTestScreen(nil)
	_, cmd := s.Update(ctrlKey('p'))
	if cmd == nil {
		t.Fatal("expected a command from Ctrl+P")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*chart.ChartScreen); !ok {
		t.Errorf("expected chart screen, got %T", msg.Screen)
	}
}

func TestShowdown_ResumeRefocusesInput(t *testing.T) {
	s := newTestScreen(nil)
	if s.Resume() == nil {
		t.Error("expected a cursor command on resume")
	}
}

func TestShowdown_SidebarStats(t *testing.T) {
	s := newTestScreen(nil)
	if strings.Contains(s.View(100, 40), "AI Success") {
		t.Error("success rate should be hidden before any round")
	}

	analyze(t, s, "I hate Mondays")
	s.Update(specialKey(tea.KeyTab))
	view := s.View(100, 40)
	if !strings.Contains(view, "AI Success") || !strings.Contains(view, "100.0%") {
		t.Errorf("expected success rate in sidebar:\n%s", view)
	}
}

func TestShowdown_HistoryDeltaOnLatestOnly(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "Oh great, another meeting...")
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyTab))
	analyze(t, s, "I hate Mondays")
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyTab))

	state := s.controller.State()
	history := state.History()
	last, ok := state.LastRound()
	if !ok {
		t.Fatal("expected a last round")
	}

	first := HistoryLine(1, history[0], last, false)
	latest := HistoryLine(2, history[1], last, true)
	if strings.Contains(first, "+10") || strings.Contains(first, "-5") {
		t.Errorf("older entry should carry no delta: %q", first)
	}
	if !strings.Contains(latest, "-5") {
		t.Errorf("latest entry should carry -5: %q", latest)
	}
	if state.Score() != 5 {
		t.Errorf("score = %d, want 5", state.Score())
	}
}

func TestShowdown_SpinnerStopsWhenIdle(t *testing.T) {
	s := newTestScreen(nil)
	if _, cmd := s.Update(spinnerTickMsg{}); cmd != nil {
		t.Error("spinner should not tick while idle")
	}
}

func TestShowdown_PendingTextComesBack(t *testing.T) {
	s := newTestScreen(nil)
	analyze(t, s, "Oh great, another meeting...")

	again := New(context.Background(), s.controller, "test-model", nil)
	if got := again.input.Value(); got != "Oh great, another meeting..." {
		t.Errorf("expected the analyzed text back in the input, got %q", got)
	}

	// Once scored there is nothing to bring back.
	s.Update(specialKey(tea.KeyTab))
	fresh := New(context.Background(), s.controller, "test-model", nil)
	if got := fresh.input.Value(); got != "" {
		t.Errorf("expected an empty input after scoring, got %q", got)
	}
}

func TestShowdown_LongInputKept(t *testing.T) {
	s := newTestScreen(nil)
	long := strings.Repeat("Oh sure, I love waiting. ", 60)
	s.input.SetValue(long)
	if got := s.input.Value(); got != long {
		t.Errorf("input was cut to %d of %d chars", len(got), len(long))
	}
}

func TestShowdown_BusyHintsOmitBack(t *testing.T) {
	s := newTestScreen(nil)
	s.input.SetValue("I hate Mondays")
	s.Update(specialKey(tea.KeyEnter))

	for _, h := range s.KeyHints() {
		if h.Key == "Esc" {
			t.Error("Esc should not be offered while analyzing")
		}
	}
}
