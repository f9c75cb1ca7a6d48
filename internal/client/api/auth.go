package api

import (
	"context"
	"net/http"

	"github.com/wikiweb/wikictl/internal/client/models"
)

// AuthResponse is the body returned by the register and login endpoints.
type AuthResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	Message string       `json:"message,omitempty"`
}

// AuthAPI calls the backend's auth routes. It is pure transport: persisting
// the returned token is the session facade's job.
type AuthAPI struct {
	c *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

func (a *AuthAPI) Register(ctx context.Context, name, email, password string, role models.Role) (*AuthResponse, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{Name: name, Email: email, Password: password, Role: string(role)}

	var resp AuthResponse
	if err := a.c.Call(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp AuthResponse
	if err := a.c.Call(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user owning the stored credential token.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := a.c.Call(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}
