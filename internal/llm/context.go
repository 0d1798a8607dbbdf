package llm

import "context"

// Purpose tags a request in the log.
type Purpose string

const (
	PurposeClassify Purpose = "classify"
	PurposeProbe    Purpose = "probe"
)

type purposeKey struct{}

func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the purpose set on ctx, if any.
func PurposeFrom(ctx context.Context) (Purpose, bool) {
	p, ok := ctx.Value(purposeKey{}).(Purpose)
	return p, ok
}
