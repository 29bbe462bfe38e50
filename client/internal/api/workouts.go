package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// GetWorkouts lists all workouts.
func GetWorkouts(ctx context.Context, c *Core) ([]types.Workout, error) {
	var ws []types.Workout
	if err := c.call(ctx, http.MethodGet, "/workouts", nil, nil, &ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// GetWorkout retrieves a workout by ID.
func GetWorkout(ctx context.Context, c *Core, id int64) (*types.Workout, error) {
	var w types.Workout
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/workouts/%d", id), nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWorkout records a workout. Exercises are forwarded untouched.
func CreateWorkout(ctx context.Context, c *Core, req types.CreateWorkoutRequest) (*types.Workout, error) {
	if req.Exercises == nil {
		req.Exercises = []any{}
	}
	var w types.Workout
	if err := c.call(ctx, http.MethodPost, "/workouts", nil, req, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
