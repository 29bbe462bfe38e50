package api

import (
	"context"
	"net/http"

	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// GetUsers lists all users.
func GetUsers(ctx context.Context, c *Core) ([]types.User, error) {
	var users []types.User
	if err := c.call(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user. Only email and password go on the wire.
func CreateUser(ctx context.Context, c *Core, req types.CreateUserRequest) (*types.User, error) {
	var user types.User
	if err := c.call(ctx, http.MethodPost, "/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
