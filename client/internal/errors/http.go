package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// as is errors.As without shadowing this package's name at call sites.
func as(err error, target any) bool { return stderrors.As(err, target) }

// errorPayload is the shape servers use to describe a failure.
type errorPayload struct {
	Message string `json:"message"`
}

// MessageFromBody extracts the "message" field of a JSON error payload.
// An absent, empty or unparsable payload falls back to "API error: <status>".
func MessageFromBody(statusCode int, body []byte) string {
	var p errorPayload
	if len(body) > 0 && json.Unmarshal(body, &p) == nil && p.Message != "" {
		return p.Message
	}
	return fmt.Sprintf("API error: %d", statusCode)
}

// NewHTTPError creates an error for a non-2xx response.
func NewHTTPError(method, endpoint string, statusCode int, body []byte) *APIError {
	msg := MessageFromBody(statusCode, body)
	return &APIError{
		Kind:       HTTPStatus,
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    msg,
		Body:       string(body),
		Underlying: stderrors.New(msg),
	}
}

// NewTransportError creates an error for a request that produced no response.
func NewTransportError(method, endpoint string, err error) *APIError {
	return &APIError{
		Kind:       Transport,
		Method:     method,
		Endpoint:   endpoint,
		Underlying: err,
	}
}

// NewMalformedError creates an error for a 2xx response that could not be decoded.
func NewMalformedError(method, endpoint string, statusCode int, body []byte, err error) *APIError {
	return &APIError{
		Kind:       Malformed,
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       string(body),
		Underlying: err,
	}
}
