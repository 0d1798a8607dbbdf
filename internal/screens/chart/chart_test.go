package chart

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/showdown/internal/game"
	"github.com/abhisek/showdown/internal/router"
	"github.com/abhisek/showdown/internal/sentiment"
	"github.com/abhisek/showdown/internal/ui/theme"
)

type cannedClassifier []sentiment.Result

func (c *cannedClassifier) Classify(context.Context, string) sentiment.Result {
	r := (*c)[0]
	*c = (*c)[1:]
	return r
}

func playedState(t *testing.T, results ...sentiment.Result) *game.State {
	t.Helper()
	canned := cannedClassifier(results)
	ctrl := game.NewController(&canned, nil)
	for range results {
		if _, err := ctrl.Analyze(context.Background(), "text"); err != nil && !errorsIsClassification(err) {
			t.Fatalf("Analyze: %v", err)
		}
		if _, err := ctrl.SubmitScore(false); err != nil {
			t.Fatalf("SubmitScore: %v", err)
		}
	}
	return ctrl.State()
}

func errorsIsClassification(err error) bool {
	var ce *sentiment.ClassificationError
	return errors.As(err, &ce)
}

func TestChartScreen_Empty(t *testing.T) {
	s := New(game.NewState())
	view := s.View(80, 20)
	if !strings.Contains(view, NoData) {
		t.Errorf("expected %q in empty view", NoData)
	}
}

func TestChartScreen_Bars(t *testing.T) {
	state := playedState(t,
		sentiment.Result{Label: sentiment.LabelPositive, Confidence: 0.82},
		sentiment.Result{Label: sentiment.LabelNegative, Confidence: 0.95},
		sentiment.Failed(&sentiment.ClassificationError{Err: context.DeadlineExceeded}),
	)

	bars := Bars(state.History())
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	want := []struct {
		label string
		value float64
	}{{"R1", 0.82}, {"R2", 0.95}, {"R3", 0}}
	for i, w := range want {
		if bars[i].Label != w.label || bars[i].Value != w.value {
			t.Errorf("bar %d = %s/%v, want %s/%v", i, bars[i].Label, bars[i].Value, w.label, w.value)
		}
	}
	if bars[0].Color != theme.Positive || bars[1].Color != theme.Negative || bars[2].Color != theme.Failed {
		t.Error("bars not colored by label")
	}

	view := New(state).View(80, 24)
	for _, s := range []string{"Rounds", "Confidence Score", "R1", "R3"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestChartScreen_Snapshot(t *testing.T) {
	state := playedState(t, sentiment.Result{Label: sentiment.LabelPositive, Confidence: 0.5})
	s := New(state)
	state.Reset()
	if len(s.history) != 1 {
		t.Error("chart should keep the history it was opened with")
	}
}

func TestChartScreen_Navigation(t *testing.T) {
	s := New(game.NewState())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
