package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// GetGyms lists all gyms.
func GetGyms(ctx context.Context, c *Core) ([]types.Gym, error) {
	var gyms []types.Gym
	if err := c.call(ctx, http.MethodGet, "/gyms", nil, nil, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

// GetGym retrieves a gym by ID.
func GetGym(ctx context.Context, c *Core, id int64) (*types.Gym, error) {
	var gym types.Gym
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/gyms/%d", id), nil, nil, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}

// CreateGym creates a gym owned by req.UserID.
func CreateGym(ctx context.Context, c *Core, req types.CreateGymRequest) (*types.Gym, error) {
	var gym types.Gym
	if err := c.call(ctx, http.MethodPost, "/gyms", nil, req, &gym); err != nil {
		return nil, err
	}
	return &gym, nil
}
