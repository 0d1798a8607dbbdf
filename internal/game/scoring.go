package game

import "github.com/abhisek/showdown/internal/sentiment"

const (
	// FooledPoints is awarded when sarcasm gets a POSITIVE label.
	FooledPoints = 10

	// DetectedPenalty is taken when sarcasm gets any other label.
	DetectedPenalty = 5
)

// Phase is the per-round state.
type Phase int

const (
	PhaseIdle     Phase = iota // waiting for text
	PhaseAnalyzed              // result held, waiting for the sarcasm report
)

func (p Phase) String() string {
	switch p {
	case PhaseAnalyzed:
		return "analyzed"
	default:
		return "idle"
	}
}

// Verdict is how a round was judged.
type Verdict int

const (
	VerdictAccepted Verdict = iota // not sarcasm, the AI's judgment stands
	VerdictFooled                  // sarcasm labeled POSITIVE
	VerdictDetected                // sarcasm labeled NEGATIVE or ERROR
)

func (v Verdict) String() string {
	switch v {
	case VerdictFooled:
		return "fooled"
	case VerdictDetected:
		return "detected"
	default:
		return "accepted"
	}
}

// Message is the banner shown after scoring.
func (v Verdict) Message() string {
	switch v {
	case VerdictFooled:
		return "✅ AI fooled! +10pts"
	case VerdictDetected:
		return "❌ AI detected sarcasm! -5pts"
	default:
		return "➡ AI's judgment accepted"
	}
}

// Judge applies the scoring policy. Only self-reported sarcasm moves the
// score; an ERROR label counts as the AI not being fooled.
func Judge(label sentiment.Label, sarcastic bool) (Verdict, int) {
	if !sarcastic {
		return VerdictAccepted, 0
	}
	if label == sentiment.LabelPositive {
		return VerdictFooled, FooledPoints
	}
	return VerdictDetected, -DetectedPenalty
}

// RoundOutcome describes one scored round.
type RoundOutcome struct {
	Round     int
	Attempt   Attempt
	Sarcastic bool
	Verdict   Verdict
	Delta     int
	Score     int
}
