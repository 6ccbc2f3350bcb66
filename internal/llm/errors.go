package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies a failed request.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable Kind = iota
	// KindRateLimit is a 429 from the provider.
	KindRateLimit
	// KindInvalidResponse means the output was not JSON or broke the schema.
	KindInvalidResponse
	// KindTruncated means generation stopped at MaxTokens.
	KindTruncated
	// KindRejected is a 4xx other than 429, e.g. a bad key or model name.
	KindRejected
)

var kindNames = map[Kind]string{
	KindUnavailable:     "unavailable",
	KindRateLimit:       "rate limited",
	KindInvalidResponse: "invalid response",
	KindTruncated:       "truncated",
	KindRejected:        "rejected",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by providers for every failed request.
type Error struct {
	Kind     Kind
	Provider string

	// RetryAfter is the server-suggested wait for KindRateLimit, if any.
	RetryAfter time.Duration

	// Content is the offending output for KindInvalidResponse and
	// KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("llm %s: %s", e.Provider, e.Kind)
	if e.Kind == KindRateLimit && e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err wraps an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// statusError classifies an HTTP failure from a provider SDK.
func statusError(provider string, status int, header http.Header, err error) *Error {
	e := &Error{Kind: KindUnavailable, Provider: provider, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		e.RetryAfter = parseRetryAfter(header)
	case status >= 400 && status < 500:
		e.Kind = KindRejected
	}
	return e
}

// parseRetryAfter reads a delay-seconds Retry-After header.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
