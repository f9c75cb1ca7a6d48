// Package forms holds the transient state and submit pipelines of the login
// and registration forms.
//
// Client-side validation runs before any network call and blocks submission;
// the password strength score is advisory only and never blocks. Every
// failure ends up in the form's Error field as a displayable string, so no
// facade rejection escapes to the rendering layer.
package forms

import (
	"context"
	"errors"
	"strings"

	"github.com/wikiweb/wikictl/internal/client/models"
)

// Validation messages, surfaced verbatim.
const (
	msgPasswordMismatch = "Passwords do not match"
	msgPasswordTooShort = "Password must be at least 6 characters"
)

// ErrInFlight is returned when a form is submitted while a previous request
// has not completed. Each form issues at most one request at a time.
var ErrInFlight = errors.New("request already in flight")

// Registrar is the slice of the auth facade the register form needs.
type Registrar interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error)
}

// Authenticator is the slice of the auth facade the login form needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// LoginForm collects credentials for the login page.
type LoginForm struct {
	Email    string
	Password string

	Error   string
	Loading bool
}

// Submit runs the login call, guarding against concurrent submission. The
// first error (validation or facade) lands in f.Error.
func (f *LoginForm) Submit(ctx context.Context, auth Authenticator) (*models.User, error) {
	if f.Loading {
		return nil, ErrInFlight
	}

	f.Error = ""
	f.Loading = true
	defer func() { f.Loading = false }()

	user, err := auth.Login(ctx, f.Email, f.Password)
	if err != nil {
		f.Error = err.Error()
		return nil, err
	}
	return user, nil
}

// RegisterForm collects the registration fields. Role defaults to viewer.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            models.Role

	Error   string
	Loading bool
}

func NewRegisterForm() *RegisterForm {
	return &RegisterForm{Role: models.RoleViewer}
}

// Validate runs the pre-submit checks in display order: password match first,
// then minimum length. The returned error text is shown verbatim.
func (f *RegisterForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return errors.New(msgPasswordMismatch)
	}
	if len(f.Password) < 6 {
		return errors.New(msgPasswordTooShort)
	}
	return nil
}

// PasswordsMatch drives the live match indicator next to the confirm field.
func (f *RegisterForm) PasswordsMatch() bool {
	return f.ConfirmPassword != "" && f.Password == f.ConfirmPassword
}

// Submit validates and then registers. Validation failures block the network
// call entirely.
func (f *RegisterForm) Submit(ctx context.Context, auth Registrar) (*models.User, error) {
	if f.Loading {
		return nil, ErrInFlight
	}

	f.Error = ""
	if err := f.Validate(); err != nil {
		f.Error = err.Error()
		return nil, err
	}

	f.Loading = true
	defer func() { f.Loading = false }()

	role := f.Role
	if role == "" {
		role = models.RoleViewer
	}

	user, err := auth.Register(ctx, strings.TrimSpace(f.Name), f.Email, f.Password, role)
	if err != nil {
		f.Error = err.Error()
		return nil, err
	}
	return user, nil
}
