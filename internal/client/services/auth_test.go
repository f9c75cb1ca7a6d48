package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikiweb/wikictl/internal/client/api"
	"github.com/wikiweb/wikictl/internal/client/models"
)

// ---- fakes ----

type fakeAuthAPI struct {
	registerResp *api.AuthResponse
	registerErr  error
	loginResp    *api.AuthResponse
	loginErr     error
	meUser       *models.User
	meErr        error

	registerCalls int
	loginCalls    int
}

func (f *fakeAuthAPI) Register(_ context.Context, name, email, password string, role models.Role) (*api.AuthResponse, error) {
	f.registerCalls++
	return f.registerResp, f.registerErr
}

func (f *fakeAuthAPI) Login(_ context.Context, email, password string) (*api.AuthResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Me(_ context.Context) (*models.User, error) {
	return f.meUser, f.meErr
}

type fakeSessions struct {
	token   string
	user    *models.User
	saveErr error

	clearCalls int
}

func (f *fakeSessions) Save(_ context.Context, token string, user *models.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token, f.user = token, user
	return nil
}

func (f *fakeSessions) Clear(_ context.Context) error {
	f.clearCalls++
	f.token, f.user = "", nil
	return nil
}

func (f *fakeSessions) HasToken(_ context.Context) bool { return f.token != "" }

func (f *fakeSessions) Identity(_ context.Context) (*models.User, error) { return f.user, nil }

// ---- tests ----

func TestLogin_PersistsTokenBeforeReturning(t *testing.T) {
	user := &models.User{ID: "1", Email: "alice@example.org", Role: models.RoleAdmin}
	apiFake := &fakeAuthAPI{loginResp: &api.AuthResponse{Success: true, User: user, Token: "tok-1"}}
	sessions := &fakeSessions{}
	svc := NewAuthService(apiFake, sessions)

	got, err := svc.Login(context.Background(), "alice@example.org", "secret")
	require.NoError(t, err)
	require.Equal(t, user, got)

	assert.Equal(t, "tok-1", sessions.token)
	assert.True(t, svc.HasActiveSession(context.Background()),
		"login followed by HasActiveSession must be true")
}

func TestLogin_BackendRejectionSurfacesMessage(t *testing.T) {
	apiFake := &fakeAuthAPI{loginErr: &api.RequestError{Status: 401, Message: "Invalid email or password"}}
	svc := NewAuthService(apiFake, &fakeSessions{})

	_, err := svc.Login(context.Background(), "alice@example.org", "wrong")
	require.EqualError(t, err, "Invalid email or password")
	assert.False(t, svc.HasActiveSession(context.Background()))
}

func TestLogin_UnsuccessfulBodyWithoutError(t *testing.T) {
	apiFake := &fakeAuthAPI{loginResp: &api.AuthResponse{Success: false, Message: "Account disabled"}}
	svc := NewAuthService(apiFake, &fakeSessions{})

	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.EqualError(t, err, "Account disabled")
}

func TestRegister_PersistsToken(t *testing.T) {
	user := &models.User{ID: "2", Email: "bob@example.org", Role: models.RoleViewer}
	apiFake := &fakeAuthAPI{registerResp: &api.AuthResponse{Success: true, User: user, Token: "tok-2"}}
	sessions := &fakeSessions{}
	svc := NewAuthService(apiFake, sessions)

	got, err := svc.Register(context.Background(), "Bob", "bob@example.org", "abcdef", models.RoleViewer)
	require.NoError(t, err)
	require.Equal(t, user, got)
	assert.Equal(t, "tok-2", sessions.token)
}

func TestRegister_NoTokenInResponse(t *testing.T) {
	apiFake := &fakeAuthAPI{registerResp: &api.AuthResponse{Success: true, User: &models.User{}}}
	sessions := &fakeSessions{}
	svc := NewAuthService(apiFake, sessions)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.org", "abcdef", models.RoleViewer)
	require.NoError(t, err)
	assert.Empty(t, sessions.token, "nothing to persist without a token")
}

func TestRegister_SaveFailurePropagates(t *testing.T) {
	apiFake := &fakeAuthAPI{registerResp: &api.AuthResponse{Success: true, Token: "tok"}}
	sessions := &fakeSessions{saveErr: errors.New("disk full")}
	svc := NewAuthService(apiFake, sessions)

	_, err := svc.Register(context.Background(), "Bob", "bob@example.org", "abcdef", models.RoleViewer)
	require.ErrorContains(t, err, "disk full")
}

func TestLogout_ClearsTokenWithoutNetwork(t *testing.T) {
	sessions := &fakeSessions{token: "tok-3"}
	apiFake := &fakeAuthAPI{}
	svc := NewAuthService(apiFake, sessions)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, 1, sessions.clearCalls)
	assert.False(t, svc.HasActiveSession(context.Background()),
		"logout followed by HasActiveSession must be false")
	assert.Zero(t, apiFake.loginCalls+apiFake.registerCalls, "logout makes no network call")
}

func TestHasActiveSession_DoesNotValidateToken(t *testing.T) {
	// A stale token still reports an active session.
	sessions := &fakeSessions{token: "expired-tok"}
	apiFake := &fakeAuthAPI{meErr: &api.RequestError{Status: 401, Message: "Token expired"}}
	svc := NewAuthService(apiFake, sessions)

	assert.True(t, svc.HasActiveSession(context.Background()))

	_, err := svc.CurrentSession(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized, "the first authenticated call surfaces the expiry")
}

func TestCurrentSession_ReturnsUser(t *testing.T) {
	user := &models.User{ID: "1", Email: "alice@example.org"}
	svc := NewAuthService(&fakeAuthAPI{meUser: user}, &fakeSessions{token: "tok"})

	got, err := svc.CurrentSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, user, got)
}
