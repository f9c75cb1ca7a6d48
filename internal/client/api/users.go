package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/wikiweb/wikictl/internal/client/models"
)

// UsersAPI calls the backend's user routes. Listing everyone is an
// admin-only route server-side; the client mirrors that check before calling.
type UsersAPI struct {
	c *Client
}

func NewUsersAPI(c *Client) *UsersAPI {
	return &UsersAPI{c: c}
}

func (u *UsersAPI) List(ctx context.Context) ([]models.User, error) {
	var resp struct {
		Success bool          `json:"success"`
		Users   []models.User `json:"users"`
		Count   int           `json:"count"`
		Message string        `json:"message,omitempty"`
	}
	if err := u.c.Call(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, unsuccessful(resp.Message, "failed to load users")
	}
	return resp.Users, nil
}

// Search asks the server for users whose name or email contains q.
func (u *UsersAPI) Search(ctx context.Context, q string) ([]models.User, error) {
	var resp struct {
		Success bool          `json:"success"`
		Users   []models.User `json:"users"`
		Count   int           `json:"count"`
		Message string        `json:"message,omitempty"`
	}
	endpoint := "/users/search?q=" + url.QueryEscape(q)
	if err := u.c.Call(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, unsuccessful(resp.Message, "failed to search users")
	}
	return resp.Users, nil
}
