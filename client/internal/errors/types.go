// Package errors classifies failures returned by the client SDK.
// Every request failure is one of three kinds so callers can branch on the
// cause without parsing messages.
package errors

import "fmt"

// Kind identifies which stage of a request failed.
type Kind int

const (
	// Transport errors never produced an HTTP response.
	// Examples: connection refused, DNS failure, timeouts.
	Transport Kind = iota

	// HTTPStatus errors carry a non-2xx response.
	HTTPStatus

	// Malformed errors carry a 2xx response whose body is not the JSON we expected.
	Malformed
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Transport:
		return "Transport"
	case HTTPStatus:
		return "HTTPStatus"
	case Malformed:
		return "Malformed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// APIError wraps a request failure with the metadata needed to report it.
type APIError struct {
	Kind       Kind
	Method     string
	Endpoint   string
	StatusCode int    // 0 for transport errors
	Message    string // user-facing message for HTTPStatus errors
	Body       string // raw response body, if any
	Underlying error
}

// Error implements the error interface.
//
// HTTPStatus errors return the server-supplied message verbatim so it can be
// shown to users as-is.
func (e *APIError) Error() string {
	switch e.Kind {
	case HTTPStatus:
		return e.Message
	case Malformed:
		return fmt.Sprintf("decode response: %v", e.Underlying)
	default:
		if e.Underlying == nil {
			return "request failed"
		}
		return e.Underlying.Error()
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *APIError) Unwrap() error {
	return e.Underlying
}

// KindOf reports the kind of err and whether err is an *APIError at all.
func KindOf(err error) (Kind, bool) {
	var apiErr *APIError
	if !as(err, &apiErr) {
		return 0, false
	}
	return apiErr.Kind, true
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if !as(err, &apiErr) {
		return 0
	}
	return apiErr.StatusCode
}
