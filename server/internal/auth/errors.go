package auth

import "errors"

var (
	// ErrMissingToken is returned when the request carries no token at all.
	ErrMissingToken = errors.New("missing auth token")

	// ErrMalformedHeader is returned when Authorization is not "Bearer <token>".
	ErrMalformedHeader = errors.New("invalid Authorization header format, expected 'Bearer <token>'")
)
