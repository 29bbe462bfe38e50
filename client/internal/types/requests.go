package types

// ------------------------------
// Request Types
// ------------------------------
//
// Each request type spells out its wire names. Multi-word fields use
// snake_case on the wire.

// CreateUserRequest holds parameters for a new user.
// Password confirmation is a form concern and never sent.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateGymRequest holds parameters for a new gym.
type CreateGymRequest struct {
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// CreateEquipmentTypeRequest holds parameters for a new equipment type.
type CreateEquipmentTypeRequest struct {
	Name string `json:"name"`
}

// CreateExerciseRequest holds parameters for a new exercise.
type CreateExerciseRequest struct {
	Name string `json:"name"`
}

// CreateWorkoutRequest holds parameters for a new workout.
type CreateWorkoutRequest struct {
	UserID    int64 `json:"user_id"`
	GymID     int64 `json:"gym_id"`
	Exercises []any `json:"exercises"`
}
