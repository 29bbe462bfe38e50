package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"

	"github.com/gymtrack/gymtrack-web/client/internal/api"
	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	creds   types.CredentialProvider // consulted on every request; nil means anonymous
	log     zerolog.Logger
	metrics bool

	core *api.Core
}

// New constructs a Client for the API rooted at baseURL. Endpoint paths are
// appended to baseURL verbatim, so it should not end with a slash.
//
// Cookies set by the API are kept in a per-client jar and sent back on later
// requests.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
		log:     log.Logger,
		metrics: true,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	cfg := api.Config{
		BaseURL:     c.baseURL,
		HTTPClient:  c.http,
		Credentials: c.creds,
		Logger:      c.log,
	}
	if c.metrics {
		cfg.Observer = metricsObserver{}
	}
	c.core = api.NewCore(cfg)
	return c, nil
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Generic requests
// --------------------------------------------------------------------

// Get issues a GET to endpoint. Params with a nil value are skipped; the rest
// are appended to the query string in order. The JSON body is returned as-is.
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (json.RawMessage, error) {
	return c.core.Get(ctx, endpoint, params)
}

// Post issues a POST to endpoint with data encoded as JSON. The JSON body of
// the response is returned as-is.
func (c *Client) Post(ctx context.Context, endpoint string, data any) (json.RawMessage, error) {
	return c.core.Post(ctx, endpoint, data)
}

// --------------------------------------------------------------------
// User operations - delegated to internal/api
// --------------------------------------------------------------------

// GetUsers lists all users.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	return api.GetUsers(ctx, c.core)
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return api.CreateUser(ctx, c.core, req)
}

// --------------------------------------------------------------------
// Gym operations - delegated to internal/api
// --------------------------------------------------------------------

// GetGyms lists all gyms.
func (c *Client) GetGyms(ctx context.Context) ([]Gym, error) {
	return api.GetGyms(ctx, c.core)
}

// GetGym retrieves a gym by ID.
func (c *Client) GetGym(ctx context.Context, id int64) (*Gym, error) {
	return api.GetGym(ctx, c.core, id)
}

// CreateGym creates a gym.
func (c *Client) CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	return api.CreateGym(ctx, c.core, req)
}

// --------------------------------------------------------------------
// Equipment operations - delegated to internal/api
// --------------------------------------------------------------------

// GetEquipment lists equipment across all gyms.
func (c *Client) GetEquipment(ctx context.Context) ([]Equipment, error) {
	return api.GetEquipment(ctx, c.core)
}

// GetGymEquipment lists the equipment of one gym.
func (c *Client) GetGymEquipment(ctx context.Context, gymID int64) ([]Equipment, error) {
	return api.GetGymEquipment(ctx, c.core, gymID)
}

// GetEquipmentTypes lists equipment types.
func (c *Client) GetEquipmentTypes(ctx context.Context) ([]EquipmentType, error) {
	return api.GetEquipmentTypes(ctx, c.core)
}

// CreateEquipmentType creates an equipment type.
func (c *Client) CreateEquipmentType(ctx context.Context, req CreateEquipmentTypeRequest) (*EquipmentType, error) {
	return api.CreateEquipmentType(ctx, c.core, req)
}

// --------------------------------------------------------------------
// Exercise operations - delegated to internal/api
// --------------------------------------------------------------------

// GetExercises lists exercises.
func (c *Client) GetExercises(ctx context.Context) ([]Exercise, error) {
	return api.GetExercises(ctx, c.core)
}

// CreateExercise creates an exercise.
func (c *Client) CreateExercise(ctx context.Context, req CreateExerciseRequest) (*Exercise, error) {
	return api.CreateExercise(ctx, c.core, req)
}

// --------------------------------------------------------------------
// Workout operations - delegated to internal/api
// --------------------------------------------------------------------

// GetWorkouts lists workouts.
func (c *Client) GetWorkouts(ctx context.Context) ([]Workout, error) {
	return api.GetWorkouts(ctx, c.core)
}

// GetWorkout retrieves a workout by ID.
func (c *Client) GetWorkout(ctx context.Context, id int64) (*Workout, error) {
	return api.GetWorkout(ctx, c.core, id)
}

// CreateWorkout records a workout.
func (c *Client) CreateWorkout(ctx context.Context, req CreateWorkoutRequest) (*Workout, error) {
	return api.CreateWorkout(ctx, c.core, req)
}
