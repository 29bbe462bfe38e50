package client

import "github.com/gymtrack/gymtrack-web/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	CreateUserRequest          = types.CreateUserRequest
	CreateGymRequest           = types.CreateGymRequest
	CreateEquipmentTypeRequest = types.CreateEquipmentTypeRequest
	CreateExerciseRequest      = types.CreateExerciseRequest
	CreateWorkoutRequest       = types.CreateWorkoutRequest

	// Query parameters
	Param  = types.Param
	Params = types.Params

	// Domain entities
	User          = types.User
	Gym           = types.Gym
	Equipment     = types.Equipment
	EquipmentType = types.EquipmentType
	Exercise      = types.Exercise
	Workout       = types.Workout

	// Credentials
	CredentialProvider = types.CredentialProvider
	CredentialFunc     = types.CredentialFunc
)

// P builds a query parameter; a nil value is omitted from the request.
func P(key string, value any) Param { return types.P(key, value) }
