package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is a registered account.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Gym is a location owned by a user.
type Gym struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// Equipment is a piece of equipment available at a gym.
type Equipment struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	GymID           int64  `json:"gym_id,omitempty"`
	EquipmentTypeID int64  `json:"equipment_type_id,omitempty"`
}

// EquipmentType groups equipment (e.g. "barbell", "cable machine").
type EquipmentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exercise is a named movement that can be part of a workout.
type Exercise struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Workout is a training session performed by a user at a gym.
// Exercises are kept opaque; the server owns their shape.
type Workout struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	GymID     int64 `json:"gym_id"`
	Exercises []any `json:"exercises,omitempty"`
}
