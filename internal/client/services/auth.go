// Package services contains the application services behind the CLI: the
// auth session facade and the user directory loader.
package services

import (
	"context"
	"errors"

	"github.com/wikiweb/wikictl/internal/client/api"
	"github.com/wikiweb/wikictl/internal/client/models"
)

// AuthService is the session facade the forms and the CLI talk to.
//
// Contract:
//   - Register/Login: call the backend and, when the response carries a
//     token, persist it before returning.
//   - CurrentSession: resolve the stored token to a user via the backend.
//   - Logout: delete the stored token; no network call.
//   - HasActiveSession: token presence only — a stale token still reports
//     true, and the first authenticated call surfaces the expiry.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	CurrentSession(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	HasActiveSession(ctx context.Context) bool
}

// SessionStore is the persistence capability injected into the facade, so
// the storage mechanism can be swapped without touching call sites.
type SessionStore interface {
	Save(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
	HasToken(ctx context.Context) bool
	Identity(ctx context.Context) (*models.User, error)
}

// authAPI is the transport slice the facade needs; *api.AuthAPI satisfies it.
type authAPI interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

type authService struct {
	api      authAPI
	sessions SessionStore
}

// NewAuthService constructs the facade over the auth transport and the
// injected session store.
func NewAuthService(authAPI authAPI, sessions SessionStore) AuthService {
	return &authService{api: authAPI, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	resp, err := a.api.Register(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}
	return a.acceptAuth(ctx, resp, "registration failed")
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.acceptAuth(ctx, resp, "login failed")
}

// acceptAuth persists the token from an auth response before the result
// reaches the caller.
func (a *authService) acceptAuth(ctx context.Context, resp *api.AuthResponse, fallback string) (*models.User, error) {
	if resp.Token != "" {
		if err := a.sessions.Save(ctx, resp.Token, resp.User); err != nil {
			return nil, err
		}
	}
	if !resp.Success {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, errors.New(fallback)
	}
	return resp.User, nil
}

func (a *authService) CurrentSession(ctx context.Context) (*models.User, error) {
	return a.api.Me(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

func (a *authService) HasActiveSession(ctx context.Context) bool {
	return a.sessions.HasToken(ctx)
}
