package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/showdown/internal/sentiment"
)

// ErrNothingToScore is returned by SubmitScore when no analysis is pending.
var ErrNothingToScore = errors.New("nothing to score: analyze some text first")

// ErrEmptyInput is returned by Analyze for blank text.
var ErrEmptyInput = sentiment.ErrEmptyInput

// Controller reduces game events against a State. It is not safe for
// concurrent use; the UI calls it from its update loop only.
type Controller struct {
	classifier sentiment.Classifier
	state      *State
	logger     *zap.Logger
}

// NewController creates a controller with a fresh state.
func NewController(classifier sentiment.Classifier, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		classifier: classifier,
		state:      NewState(),
	}
	c.logger = logger.Named("game").With(zap.String("session_id", c.state.SessionID()))
	return c
}

// State returns the state for rendering. Mutate it only via the controller.
func (c *Controller) State() *State {
	return c.state
}

// NormalizeInput trims text and reports whether anything is left to
// classify.
func NormalizeInput(text string) (string, bool) {
	text = strings.TrimSpace(text)
	return text, text != ""
}

// Classify runs the classifier without touching the state. The UI calls
// it off the update loop and feeds the result back as an Analyzed event.
func (c *Controller) Classify(ctx context.Context, text string) sentiment.Result {
	if c.classifier == nil {
		return sentiment.Failed(sentiment.ErrModelUnavailable)
	}
	return c.classifier.Classify(ctx, text)
}

// Analyze classifies text and holds the result until SubmitScore. Blank
// text is a no-op returning ErrEmptyInput. A classification failure is
// stored as (ERROR, 0.0) and also returned.
func (c *Controller) Analyze(ctx context.Context, text string) (sentiment.Result, error) {
	text, ok := NormalizeInput(text)
	if !ok {
		return sentiment.Result{}, ErrEmptyInput
	}
	res := c.Classify(ctx, text)
	return c.recordAnalysis(text, res)
}

func (c *Controller) recordAnalysis(text string, res sentiment.Result) (sentiment.Result, error) {
	text, ok := NormalizeInput(text)
	if !ok {
		return sentiment.Result{}, ErrEmptyInput
	}
	if !res.OK() && res.Err == nil {
		res.Err = &sentiment.ClassificationError{Err: errors.New("no result")}
	}
	c.state.setPending(text, res)

	if res.Err != nil {
		c.logger.Warn("classification failed", zap.Error(res.Err))
	} else {
		c.logger.Debug("text analyzed",
			zap.String("label", string(res.Label)),
			zap.Float64("confidence", res.Confidence),
			zap.Int("chars", len(text)),
		)
	}
	return res, res.Err
}

// SubmitScore scores the pending analysis and records the round.
func (c *Controller) SubmitScore(sarcastic bool) (RoundOutcome, error) {
	attempt, ok := c.state.Pending()
	if !ok {
		return RoundOutcome{}, ErrNothingToScore
	}

	verdict, delta := Judge(attempt.Label, sarcastic)
	c.state.AdjustScore(delta)
	c.state.RecordAttempt(attempt)
	c.state.clearPending()

	out := RoundOutcome{
		Round:     c.state.RoundsPlayed(),
		Attempt:   attempt,
		Sarcastic: sarcastic,
		Verdict:   verdict,
		Delta:     delta,
		Score:     c.state.Score(),
	}
	c.state.lastRound = &out

	c.logger.Info("round scored",
		zap.Int("round", out.Round),
		zap.String("label", string(attempt.Label)),
		zap.Float64("confidence", attempt.Confidence),
		zap.Bool("sarcastic", sarcastic),
		zap.Stringer("verdict", verdict),
		zap.Int("delta", delta),
		zap.Int("score", out.Score),
	)
	return out, nil
}

// Reset starts a new game in the same session.
func (c *Controller) Reset() {
	rounds, score := c.state.RoundsPlayed(), c.state.Score()
	c.state.Reset()
	c.logger.Info("game reset", zap.Int("rounds", rounds), zap.Int("score", score))
}

// Apply dispatches ev.
func (c *Controller) Apply(ctx context.Context, ev Event) Outcome {
	switch ev := ev.(type) {
	case Analyze:
		res, err := c.Analyze(ctx, ev.Text)
		if errors.Is(err, ErrEmptyInput) {
			return Outcome{Err: err}
		}
		return Outcome{Result: &res, Err: err}
	case Analyzed:
		res, err := c.recordAnalysis(ev.Text, ev.Result)
		if errors.Is(err, ErrEmptyInput) {
			return Outcome{Err: err}
		}
		return Outcome{Result: &res, Err: err}
	case SubmitScore:
		round, err := c.SubmitScore(ev.Sarcastic)
		if err != nil {
			return Outcome{Err: err}
		}
		return Outcome{Round: &round}
	case Reset:
		c.Reset()
		return Outcome{}
	default:
		return Outcome{Err: fmt.Errorf("unknown event %T", ev)}
	}
}
