package game

import "github.com/abhisek/showdown/internal/sentiment"

// Event is an input to Controller.Apply.
type Event interface {
	event()
}

// Analyze asks for Text to be classified.
type Analyze struct {
	Text string
}

// Analyzed carries a classification computed elsewhere, e.g. in a
// background command, back to the controller.
type Analyzed struct {
	Text   string
	Result sentiment.Result
}

// SubmitScore reports whether the analyzed text was sarcastic.
type SubmitScore struct {
	Sarcastic bool
}

// Reset starts the game over.
type Reset struct{}

func (Analyze) event()     {}
func (Analyzed) event()    {}
func (SubmitScore) event() {}
func (Reset) event()       {}

// Outcome is what Apply produced. Result is set for Analyze and Analyzed,
// Round for SubmitScore.
type Outcome struct {
	Result *sentiment.Result
	Round  *RoundOutcome
	Err    error
}
