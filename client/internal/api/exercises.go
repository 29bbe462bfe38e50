package api

import (
	"context"
	"net/http"

	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// GetExercises lists all exercises.
func GetExercises(ctx context.Context, c *Core) ([]types.Exercise, error) {
	var exs []types.Exercise
	if err := c.call(ctx, http.MethodGet, "/exercises", nil, nil, &exs); err != nil {
		return nil, err
	}
	return exs, nil
}

// CreateExercise creates an exercise.
func CreateExercise(ctx context.Context, c *Core, req types.CreateExerciseRequest) (*types.Exercise, error) {
	var ex types.Exercise
	if err := c.call(ctx, http.MethodPost, "/exercises", nil, req, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}
