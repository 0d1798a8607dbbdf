package game

import (
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/showdown/internal/sentiment"
)

// Attempt is one classified text as recorded in the history.
type Attempt struct {
	Label      sentiment.Label
	Confidence float64
}

// AttemptFrom converts a classifier result.
func AttemptFrom(r sentiment.Result) Attempt {
	if !r.OK() {
		return Attempt{Label: sentiment.LabelError, Confidence: 0}
	}
	return Attempt{Label: r.Label, Confidence: r.Confidence}
}

// State is the score and history of one game session. It is mutated only
// through Reset, RecordAttempt and AdjustScore (plus the pending-result
// bookkeeping the Controller does); readers get copies.
type State struct {
	sessionID string

	score     int
	rounds    int
	history   []Attempt
	lastInput string

	// pending is the latest classification awaiting a sarcasm report.
	pending    *Attempt
	pendingErr error

	// lastRound is the most recent scored round, for the history
	// annotation and the outcome banner.
	lastRound *RoundOutcome
}

// NewState returns an empty session state.
func NewState() *State {
	return &State{sessionID: uuid.NewString()}
}

// Reset clears score, rounds, history, last input and any pending result.
// The session ID survives.
func (s *State) Reset() {
	*s = State{sessionID: s.sessionID}
}

// RecordAttempt appends a to the history and counts the round. History is
// append-only; only Reset removes entries.
func (s *State) RecordAttempt(a Attempt) {
	s.history = append(s.history, a)
	s.rounds++
}

// AdjustScore adds delta to the score. The score has no bounds.
func (s *State) AdjustScore(delta int) {
	s.score += delta
}

// SessionID identifies the session in logs.
func (s *State) SessionID() string { return s.sessionID }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// RoundsPlayed returns the number of scored rounds.
func (s *State) RoundsPlayed() int { return s.rounds }

// LastInput returns the most recently analyzed text.
func (s *State) LastInput() string { return s.lastInput }

// History returns a copy of the recorded attempts in round order.
func (s *State) History() []Attempt {
	return slices.Clone(s.history)
}

// Pending returns the classification awaiting a sarcasm report.
func (s *State) Pending() (Attempt, bool) {
	if s.pending == nil {
		return Attempt{}, false
	}
	return *s.pending, true
}

// PendingErr returns the error of the pending classification, if it failed.
func (s *State) PendingErr() error {
	return s.pendingErr
}

// LastRound returns the most recently scored round.
func (s *State) LastRound() (RoundOutcome, bool) {
	if s.lastRound == nil {
		return RoundOutcome{}, false
	}
	return *s.lastRound, true
}

// Phase reports where the round state machine is.
func (s *State) Phase() Phase {
	if s.pending != nil {
		return PhaseAnalyzed
	}
	return PhaseIdle
}

func (s *State) setPending(text string, r sentiment.Result) {
	a := AttemptFrom(r)
	s.lastInput = text
	s.pending = &a
	s.pendingErr = r.Err
}

func (s *State) clearPending() {
	s.pending = nil
	s.pendingErr = nil
}
