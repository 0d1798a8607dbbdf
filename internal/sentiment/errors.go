package sentiment

import (
	"errors"
	"fmt"
)

var (
	// ErrModelUnavailable is returned for every call after a failed load.
	ErrModelUnavailable = errors.New("sentiment model is not loaded")

	// ErrEmptyInput is returned for blank text. Callers are expected to
	// filter it out before classifying.
	ErrEmptyInput = errors.New("empty input")
)

// ModelLoadError reports that the model could not be initialized.
type ModelLoadError struct {
	Model string
	Err   error
}

func (e *ModelLoadError) Error() string {
	if e.Model == "" {
		return fmt.Sprintf("failed to load model: %v", e.Err)
	}
	return fmt.Sprintf("failed to load model %s: %v", e.Model, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// ClassificationError reports that a single classification failed.
type ClassificationError struct {
	Model string
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
