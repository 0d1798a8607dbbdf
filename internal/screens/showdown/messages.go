package showdown

import (
	"time"

	"github.com/abhisek/showdown/internal/sentiment"
)

// analysisDoneMsg carries a finished classification back to the update loop.
type analysisDoneMsg struct {
	Text   string
	Result sentiment.Result
}

// spinnerTickMsg animates the spinner while a classification is in flight.
type spinnerTickMsg time.Time
