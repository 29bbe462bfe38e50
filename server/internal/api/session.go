package api

import (
	"net/http"

	"github.com/gymtrack/gymtrack-web/pkg/session"
	"github.com/gymtrack/gymtrack-web/server/internal/auth"
)

// TokenCookie is the browser cookie holding the bearer token.
const TokenCookie = auth.TokenCookie

// WithSessionToken places the caller's token, when present, on the request
// context for session.ContextProvider to pick up. Requests without one pass
// through anonymous.
func WithSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, err := auth.TokenFromRequest(r); err == nil {
			r = r.WithContext(session.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
