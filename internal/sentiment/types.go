package sentiment

import (
	"context"
	"strings"
)

// Label is the categorical output of a classification.
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"

	// LabelError is the sentinel for a failed classification. No model
	// produces it.
	LabelError Label = "ERROR"
)

// ParseLabel maps a model label onto POSITIVE or NEGATIVE. Case and
// surrounding space are ignored; the short forms used by some hosted
// models ("pos", "LABEL_1") are accepted too.
func ParseLabel(s string) (Label, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "POSITIVE", "POS", "LABEL_1":
		return LabelPositive, true
	case "NEGATIVE", "NEG", "LABEL_0":
		return LabelNegative, true
	}
	return LabelError, false
}

// Emoji returns the face shown next to a label.
func (l Label) Emoji() string {
	switch l {
	case LabelPositive:
		return "😊"
	case LabelNegative:
		return "😠"
	default:
		return "❌"
	}
}

// Result is the outcome of one classification. Err is set only when
// Label is LabelError, in which case Confidence is 0.
type Result struct {
	Label      Label
	Confidence float64
	Err        error
}

// Failed builds the sentinel result for err.
func Failed(err error) Result {
	return Result{Label: LabelError, Confidence: 0, Err: err}
}

// OK reports whether the classification succeeded.
func (r Result) OK() bool {
	return r.Label != LabelError
}

// Prediction is the raw output of a Model before normalization.
type Prediction struct {
	Label      string
	Confidence float64
}

// Model is a pre-trained text classifier.
type Model interface {
	Predict(ctx context.Context, text string) (Prediction, error)
	Name() string
}

// Loader builds a Model. It is expected to be expensive and is called
// once per process.
type Loader func(ctx context.Context) (Model, error)

// Classifier is what the game depends on.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}
