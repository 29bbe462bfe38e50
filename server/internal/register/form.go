// Package register implements the account sign-up form.
package register

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gymtrack/gymtrack-web/client"
)

// Messages shown in the form's error banner.
const (
	MsgRequired = "Email and password are required"
	MsgMismatch = "Passwords do not match"
	MsgFailed   = "Registration failed"
)

// SuccessRedirect is where the user lands after signing up.
const SuccessRedirect = "/"

// UserCreator is the part of the API client the form needs.
type UserCreator interface {
	CreateUser(ctx context.Context, req client.CreateUserRequest) (*client.User, error)
}

// Form is the state of one sign-up form.
type Form struct {
	Email           string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"eqfield=Password"`

	// Error is the banner text; empty hides the banner.
	Error string
	// Loading is true while the create-user call is in flight.
	Loading bool
}

// Submitter runs form submissions against the API.
type Submitter struct {
	users    UserCreator
	validate *validator.Validate
	log      zerolog.Logger
}

// NewSubmitter returns a Submitter creating accounts through users.
func NewSubmitter(users UserCreator, log zerolog.Logger) *Submitter {
	return &Submitter{
		users:    users,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Submit validates f and, when it passes, creates the account.
// It returns the path to navigate to, or "" when the form should be shown
// again with f.Error set. Failed checks never reach the API.
func (s *Submitter) Submit(ctx context.Context, f *Form) string {
	f.Error = ""

	if msg := s.check(f); msg != "" {
		f.Error = msg
		return ""
	}

	f.Loading = true
	defer func() { f.Loading = false }()

	user, err := s.users.CreateUser(ctx, client.CreateUserRequest{
		Email:    f.Email,
		Password: f.Password,
	})
	if err != nil {
		s.log.Error().Err(err).Int("status_code", client.StatusCode(err)).Msg("registration failed")
		f.Error = err.Error()
		if f.Error == "" {
			f.Error = MsgFailed
		}
		return ""
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user created")
	return SuccessRedirect
}

// check returns the banner text for the first failed rule, or "".
// Presence is checked before the confirmation match.
func (s *Submitter) check(f *Form) string {
	err := s.validate.Struct(f)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MsgFailed
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return MsgRequired
		}
	}
	return MsgMismatch
}
