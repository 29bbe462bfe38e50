package session

import "context"

type tokenKey struct{}

// WithToken returns a copy of ctx carrying a request-scoped token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token placed by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// ContextProvider is a credential provider for servers acting on behalf of
// many users: the token travels on each request's context.
type ContextProvider struct{}

// Token implements the client's credential provider interface.
func (ContextProvider) Token(ctx context.Context) (string, error) {
	return TokenFromContext(ctx), nil
}
