// Package session owns the bearer token of the signed-in user.
//
// A Session is handed to the API client as its credential provider. The
// token is looked up in the backing Store on every request, so a login or
// logout is seen by the very next call.
package session

import (
	"context"
	"errors"
	"fmt"
)

// TokenKey is the fixed key the token is stored under.
const TokenKey = "token"

// ErrEmptyToken is returned by Login when no token is given.
var ErrEmptyToken = errors.New("token cannot be empty")

// Store is a persistent string key/value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Session is an authenticated-session handle backed by a Store.
type Session struct {
	store Store
}

// New returns a Session reading and writing through store.
func New(store Store) *Session {
	return &Session{store: store}
}

// Token returns the stored token, or "" when signed out.
func (s *Session) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	tok, _, err := s.store.Get(TokenKey)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return tok, nil
}

// Login stores token for subsequent requests.
func (s *Session) Login(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Set(TokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Logout forgets the token. Logging out twice is not an error.
func (s *Session) Logout() error {
	if err := s.store.Delete(TokenKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Authenticated reports whether a token is currently stored.
func (s *Session) Authenticated(ctx context.Context) (bool, error) {
	tok, err := s.Token(ctx)
	return tok != "", err
}
