package client

import (
	clienterrors "github.com/gymtrack/gymtrack-web/client/internal/errors"
)

// APIError is returned for every request failure that reached the transport.
// Use errors.As to inspect it.
type APIError = clienterrors.APIError

// ErrorKind classifies an APIError.
type ErrorKind = clienterrors.Kind

const (
	KindTransport  = clienterrors.Transport
	KindHTTPStatus = clienterrors.HTTPStatus
	KindMalformed  = clienterrors.Malformed
)

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool { return isKind(err, clienterrors.Transport) }

// IsHTTPStatus reports whether err is a non-2xx response.
func IsHTTPStatus(err error) bool { return isKind(err, clienterrors.HTTPStatus) }

// IsMalformed reports whether err is a 2xx response with an undecodable body.
func IsMalformed(err error) bool { return isKind(err, clienterrors.Malformed) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return clienterrors.StatusCode(err) }

func isKind(err error, k clienterrors.Kind) bool {
	got, ok := clienterrors.KindOf(err)
	return ok && got == k
}
