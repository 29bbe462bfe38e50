package types

import "context"

// ------------------------------
// Shared Interfaces
// ------------------------------

// CredentialProvider yields the bearer token to attach to a request.
// It is consulted on every request; an empty token means the request is
// sent without an Authorization header.
type CredentialProvider interface {
	Token(ctx context.Context) (string, error)
}

// CredentialFunc adapts a function to CredentialProvider.
type CredentialFunc func(ctx context.Context) (string, error)

// Token implements CredentialProvider.
func (f CredentialFunc) Token(ctx context.Context) (string, error) { return f(ctx) }
