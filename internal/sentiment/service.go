package sentiment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Service is the classifier adapter. It owns a model loaded once at
// startup and turns every outcome, including panics inside the model,
// into a Result.
type Service struct {
	model   Model
	loadErr error
	logger  *zap.Logger
}

var _ Classifier = (*Service)(nil)

// Load runs loader and returns a ready Service. If loading fails the
// returned error is a *ModelLoadError and the Service is still usable:
// every Classify call yields the ERROR sentinel.
func Load(ctx context.Context, loader Loader, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{logger: logger.Named("sentiment")}

	start := time.Now()
	model, err := runLoader(ctx, loader)
	if err != nil {
		s.loadErr = &ModelLoadError{Err: err}
		s.logger.Error("model load failed", zap.Error(err))
		return s, s.loadErr
	}

	s.model = model
	s.logger.Info("model loaded",
		zap.String("model", model.Name()),
		zap.Duration("took", time.Since(start)),
	)
	return s, nil
}

// NewService wraps an already constructed model.
func NewService(model Model, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{model: model, logger: logger.Named("sentiment")}
}

func runLoader(ctx context.Context, loader Loader) (model Model, err error) {
	if loader == nil {
		return nil, fmt.Errorf("no model loader configured")
	}
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("loader panicked: %v", r)
		}
	}()
	model, err = loader(ctx)
	if err == nil && model == nil {
		err = fmt.Errorf("loader returned no model")
	}
	return model, err
}

// LoadErr returns the load failure, if any.
func (s *Service) LoadErr() error {
	return s.loadErr
}

// ModelName names the loaded model, or "none".
func (s *Service) ModelName() string {
	if s.model == nil {
		return "none"
	}
	return s.model.Name()
}

// Classify labels text. It never panics and never returns a confidence
// outside [0,1].
func (s *Service) Classify(ctx context.Context, text string) Result {
	if s.model == nil {
		return Failed(ErrModelUnavailable)
	}
	if strings.TrimSpace(text) == "" {
		return Failed(ErrEmptyInput)
	}

	start := time.Now()
	pred, err := s.predict(ctx, text)
	if err != nil {
		s.logger.Warn("classification failed",
			zap.String("model", s.model.Name()),
			zap.Error(err),
		)
		return Failed(&ClassificationError{Model: s.model.Name(), Err: err})
	}

	res, err := normalize(pred)
	if err != nil {
		s.logger.Warn("unusable prediction",
			zap.String("model", s.model.Name()),
			zap.String("label", pred.Label),
			zap.Error(err),
		)
		return Failed(&ClassificationError{Model: s.model.Name(), Err: err})
	}

	s.logger.Debug("classified",
		zap.String("model", s.model.Name()),
		zap.String("label", string(res.Label)),
		zap.Float64("confidence", res.Confidence),
		zap.Int("chars", len(text)),
		zap.Duration("took", time.Since(start)),
	)
	return res
}

func (s *Service) predict(ctx context.Context, text string) (pred Prediction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()
	return s.model.Predict(ctx, text)
}

// normalize maps a raw prediction onto a valid Result.
func normalize(p Prediction) (Result, error) {
	label, ok := ParseLabel(p.Label)
	if !ok {
		return Result{}, fmt.Errorf("unknown label %q", p.Label)
	}
	if math.IsNaN(p.Confidence) {
		return Result{}, fmt.Errorf("confidence is NaN")
	}
	return Result{Label: label, Confidence: clamp01(p.Confidence)}, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
