package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider logs one line per request. Prompt text is never logged.
type LoggingProvider struct {
	inner  Provider
	vendor string
	logger *zap.Logger
}

// WithLogging wraps p. A nil logger discards everything.
func WithLogging(p Provider, vendor string, logger *zap.Logger) *LoggingProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, vendor: vendor, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	start := time.Now()
	c, err := l.inner.Complete(ctx, p)

	purpose, ok := PurposeFrom(ctx)
	if !ok {
		purpose = "unspecified"
	}
	fields := []zap.Field{
		zap.String("vendor", l.vendor),
		zap.String("model", l.inner.Model()),
		zap.String("purpose", string(purpose)),
		zap.Duration("latency", time.Since(start)),
		zap.Int("prompt_chars", p.Chars()),
	}

	if err != nil {
		if kind, ok := KindOf(err); ok {
			fields = append(fields, zap.Stringer("kind", kind))
		}
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields,
		zap.String("served_by", c.ServedBy),
		zap.Int("input_tokens", c.Tokens.In),
		zap.Int("output_tokens", c.Tokens.Out),
		zap.String("stop", string(c.Stop)),
	)
	if price, ok := PriceOf(c.ServedBy); ok {
		fields = append(fields, zap.Float64("cost_usd", price.Cost(c.Tokens)))
	}
	l.logger.Debug("llm request", fields...)
	return c, nil
}

func (l *LoggingProvider) Model() string {
	return l.inner.Model()
}
