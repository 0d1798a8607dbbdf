package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff and
// jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p. At least one attempt is always made.
func WithRetry(p Provider, cfg RetryConfig) *RetryProvider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	var (
		attempts  int
		lastErr   error
		badOutput bool
	)
	for attempt := range r.config.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		attempts++

		c, err := r.inner.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		lastErr = err

		if !retryable(err, &badOutput) || attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	if attempts > 1 {
		return nil, &RetryError{Attempts: attempts, Err: lastErr}
	}
	return nil, lastErr
}

func (r *RetryProvider) Model() string {
	return r.inner.Model()
}

// retryable decides whether err is worth another attempt. A bad answer
// gets one more try; seenBadOutput records that it was used.
func retryable(err error, seenBadOutput *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindRejected, KindTruncated:
		return false
	case KindBadOutput:
		if *seenBadOutput {
			return false
		}
		*seenBadOutput = true
		return true
	default:
		return true
	}
}

func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return min(e.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
