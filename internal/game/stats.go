package game

import "github.com/abhisek/showdown/internal/sentiment"

// Stats is the sidebar summary.
type Stats struct {
	Score        int
	RoundsPlayed int

	// SuccessRate is only meaningful when HasSuccessRate is set.
	SuccessRate    float64
	HasSuccessRate bool
}

// Stats summarizes the state.
func (s *State) Stats() Stats {
	rate, ok := AISuccessRate(s.history)
	return Stats{
		Score:          s.score,
		RoundsPlayed:   s.rounds,
		SuccessRate:    rate,
		HasSuccessRate: ok,
	}
}

// AISuccessRate is the share of attempts labeled NEGATIVE. It counts every
// round, whether or not it was reported as sarcasm. Undefined for an
// empty history.
func AISuccessRate(history []Attempt) (float64, bool) {
	if len(history) == 0 {
		return 0, false
	}
	var negatives int
	for _, a := range history {
		if a.Label == sentiment.LabelNegative {
			negatives++
		}
	}
	return float64(negatives) / float64(len(history)), true
}
