package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies a provider failure for retry decisions.
type Kind int

const (
	// KindUnavailable covers network errors and 5xx responses.
	KindUnavailable Kind = iota
	KindRateLimited
	// KindRejected is a 4xx other than 429, such as a bad key or model.
	KindRejected
	// KindBadOutput is an answer that is not valid JSON or does not
	// match the requested schema.
	KindBadOutput
	// KindTruncated is an answer cut off by MaxTokens.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "rejected"
	case KindBadOutput:
		return "bad output"
	case KindTruncated:
		return "truncated"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a provider failure.
type Error struct {
	Kind Kind

	// RetryAfter is the server's requested delay, when it sent one.
	RetryAfter time.Duration

	// Raw is the offending answer for KindBadOutput and KindTruncated.
	Raw json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// RetryError wraps the last failure after more than one attempt.
type RetryError struct {
	Attempts int
	Err      error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error { return e.Err }

func badOutput(raw json.RawMessage, err error) *Error {
	return &Error{Kind: KindBadOutput, Raw: raw, Err: err}
}

// fromStatus maps an HTTP status from a vendor SDK error. A zero status
// means the request never got a response.
func fromStatus(status int, header http.Header, err error) *Error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, RetryAfter: retryAfter(header), Err: err}
	case status >= 400 && status < 500:
		return &Error{Kind: KindRejected, Err: err}
	default:
		return &Error{Kind: KindUnavailable, Err: err}
	}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
