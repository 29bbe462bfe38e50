package register

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymtrack/gymtrack-web/client"
)

type fakeUsers struct {
	calls   []client.CreateUserRequest
	err     error
	loading []bool
	form    *Form
}

func (f *fakeUsers) CreateUser(_ context.Context, req client.CreateUserRequest) (*client.User, error) {
	f.calls = append(f.calls, req)
	if f.form != nil {
		f.loading = append(f.loading, f.form.Loading)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &client.User{ID: 1, Email: req.Email}, nil
}

type emptyErr struct{}

func (emptyErr) Error() string { return "" }

func TestSubmit_Validation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		form Form
		want string
	}{
		{"empty email", Form{Password: "p", ConfirmPassword: "p"}, MsgRequired},
		{"empty password", Form{Email: "a@b.com", ConfirmPassword: "p"}, MsgRequired},
		{"everything empty", Form{}, MsgRequired},
		{"required wins over mismatch", Form{Email: "", Password: "p", ConfirmPassword: "q"}, MsgRequired},
		{"mismatch", Form{Email: "a@b.com", Password: "p", ConfirmPassword: "q"}, MsgMismatch},
		{"missing confirmation", Form{Email: "a@b.com", Password: "p"}, MsgMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			users := &fakeUsers{}
			s := NewSubmitter(users, zerolog.Nop())
			f := tc.form
			redirect := s.Submit(context.Background(), &f)
			assert.Empty(t, redirect)
			assert.Equal(t, tc.want, f.Error)
			assert.False(t, f.Loading)
			assert.Empty(t, users.calls, "no network call expected")
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{}
	s := NewSubmitter(users, zerolog.Nop())
	f := Form{Email: "a@b.com", Password: "p", ConfirmPassword: "p", Error: "stale"}
	users.form = &f

	redirect := s.Submit(context.Background(), &f)

	assert.Equal(t, SuccessRedirect, redirect)
	assert.Empty(t, f.Error)
	assert.False(t, f.Loading)
	require.Len(t, users.calls, 1)
	assert.Equal(t, client.CreateUserRequest{Email: "a@b.com", Password: "p"}, users.calls[0])
	assert.Equal(t, []bool{true}, users.loading)
}

func TestSubmit_APIFailure(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{err: errors.New("Email taken")}
	s := NewSubmitter(users, zerolog.Nop())
	f := Form{Email: "a@b.com", Password: "p", ConfirmPassword: "p"}

	redirect := s.Submit(context.Background(), &f)

	assert.Empty(t, redirect)
	assert.Equal(t, "Email taken", f.Error)
	assert.False(t, f.Loading)
	assert.Len(t, users.calls, 1)
}

func TestSubmit_EmptyErrorMessage(t *testing.T) {
	t.Parallel()
	s := NewSubmitter(&fakeUsers{err: emptyErr{}}, zerolog.Nop())
	f := Form{Email: "a@b.com", Password: "p", ConfirmPassword: "p"}
	s.Submit(context.Background(), &f)
	assert.Equal(t, MsgFailed, f.Error)
}

func TestSubmit_ClearsPreviousError(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{}
	s := NewSubmitter(users, zerolog.Nop())
	f := Form{Email: "a@b.com", Password: "p", ConfirmPassword: "x"}
	s.Submit(context.Background(), &f)
	require.Equal(t, MsgMismatch, f.Error)

	f.ConfirmPassword = "p"
	assert.Equal(t, SuccessRedirect, s.Submit(context.Background(), &f))
	assert.Empty(t, f.Error)
}

func TestSubmit_LogsOmitEmail(t *testing.T) {
	t.Parallel()
	const email = "secret@example.com"

	var failed bytes.Buffer
	s := NewSubmitter(&fakeUsers{err: errors.New("Email taken")}, zerolog.New(&failed))
	f := Form{Email: email, Password: "p", ConfirmPassword: "p"}
	s.Submit(context.Background(), &f)
	assert.Contains(t, failed.String(), "registration failed")
	assert.NotContains(t, failed.String(), email)

	var created bytes.Buffer
	s = NewSubmitter(&fakeUsers{}, zerolog.New(&created))
	f = Form{Email: email, Password: "p", ConfirmPassword: "p"}
	s.Submit(context.Background(), &f)
	assert.Contains(t, created.String(), "user created")
	assert.NotContains(t, created.String(), email)
}
