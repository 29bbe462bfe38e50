// Package auth reads the caller's bearer token from an incoming request.
package auth

import (
	"net/http"
	"strings"
)

// TokenCookie names the browser cookie holding the bearer token.
const TokenCookie = "token"

// TokenFromRequest returns the caller's token. The token cookie wins; a
// "Bearer <token>" Authorization header is accepted for API-style callers.
func TokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", ErrMalformedHeader
	}
	return token, nil
}
