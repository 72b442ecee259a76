package transport

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the transport error taxonomy shared with the relay's envelope
// convention.
type Kind string

const (
	// KindConfig means no API base URL could be resolved. Not retried;
	// surfaced as "setup required".
	KindConfig Kind = "config"
	// KindTimeout means the request exceeded its bounded timeout.
	KindTimeout Kind = "timeout"
	// KindNetwork means the request failed before an HTTP response
	// arrived (DNS, refused connection, reset).
	KindNetwork Kind = "network_error"
	// KindRateLimit means the relay answered 429; RetryAfter carries the
	// mandatory delay before the next attempt.
	KindRateLimit Kind = "rate_limit"
	// KindHTTP means the relay answered with a non-success status or a
	// success:false envelope.
	KindHTTP Kind = "http_error"
)

// DefaultRetryAfter applies when a 429 response omits the Retry-After
// duration.
const DefaultRetryAfter = 900 * time.Second

// Error is the typed failure every Send call returns. Callers classify via
// Kind instead of string matching.
type Error struct {
	Kind Kind

	// Status is the HTTP status code for KindHTTP and KindRateLimit.
	Status int

	// RetryAfter is the server-mandated delay for KindRateLimit.
	RetryAfter time.Duration

	// Message is the server-provided or transport-level description.
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("transport %s: %s", e.Kind, e.Message)
}

// Retryable reports whether the failure is transient and worth a backoff
// retry. Rate limits are retryable too, but only after RetryAfter elapses;
// callers must check Kind for that case.
func (e *Error) Retryable() bool {
	return e.Kind == KindTimeout || e.Kind == KindNetwork || e.Kind == KindRateLimit
}

// AsError unwraps err into a *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
