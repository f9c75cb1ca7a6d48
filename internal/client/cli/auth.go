package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/wikiweb/wikictl/internal/client/api"
	"github.com/wikiweb/wikictl/internal/client/forms"
	"github.com/wikiweb/wikictl/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// restoreSession resolves the stored token to a user. When the server is
// unreachable the cached identity serves as a display-only fallback; an
// expired token is cleared so the prompt drops back to the logged-out state.
func (a *App) restoreSession(ctx context.Context) {
	if !a.auth.HasActiveSession(ctx) {
		return
	}

	user, err := a.auth.CurrentSession(ctx)
	if err == nil {
		a.currentUser = user
		return
	}

	if errors.Is(err, api.ErrUnavailable) {
		cached, cerr := a.sessions.Identity(ctx)
		if cerr == nil && cached != nil {
			fmt.Fprintln(a.out, "Server unreachable, using cached identity.")
			a.currentUser = cached
			return
		}
	}
	if errors.Is(err, api.ErrUnauthorized) {
		_ = a.auth.Logout(ctx)
	}
	a.log.Warn(ctx, "session restore failed", "error", err)
}

// Register prompts for the account fields and attempts to create a new
// account. Validation failures and rejected submissions are printed, not
// returned; only input errors propagate.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	roleText, err := getSimpleText(a.reader, "Enter role (admin/editor/viewer, empty for viewer)", a.out)
	if err != nil {
		return err
	}
	role := models.RoleViewer
	if roleText != "" {
		parsed, ok := models.ParseRole(roleText)
		if !ok {
			fmt.Fprintf(a.out, "Unknown role %q, using viewer.\n", roleText)
		} else {
			role = parsed
		}
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	if s := forms.PasswordStrength(password); s.Label != "" {
		fmt.Fprintf(a.out, "Password strength: %s (%d/5)\n", s.Label, s.Score)
	}

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	form := &forms.RegisterForm{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
		Role:            role,
	}
	if form.PasswordsMatch() {
		fmt.Fprintln(a.out, "Passwords match.")
	}

	user, err := form.Submit(ctx, a.auth)
	if err != nil {
		fmt.Fprintln(a.out, form.Error)
		return nil
	}

	a.currentUser = user
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and tries to authenticate. A rejected login
// is printed via the form's error text; the REPL stays in the logged-out
// state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	form := &forms.LoginForm{Email: email, Password: password}

	user, err := form.Submit(ctx, a.auth)
	if err != nil {
		fmt.Fprintln(a.out, form.Error)
		return nil
	}

	a.currentUser = user
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

// Logout deletes the stored token and cached identity. No network call.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.currentUser = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current identity plus, when the token is a well-formed
// JWT, its display claims. The claims are informational only; the token stays
// opaque for every authorization decision.
func (a *App) Whoami(ctx context.Context) error {
	if a.currentUser == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	u := a.currentUser
	fmt.Fprintf(a.out, "%s <%s> %s\n", u.Name, u.Email, u.Role)
	if url := a.avatars.Get(ctx, u.Email); url != "" {
		fmt.Fprintf(a.out, "Avatar: %s\n", url)
	}

	if claims, ok := a.sessions.TokenClaims(ctx); ok {
		if claims.Subject != "" {
			fmt.Fprintf(a.out, "Token subject: %s\n", claims.Subject)
		}
		if !claims.ExpiresAt.IsZero() {
			fmt.Fprintf(a.out, "Token expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
	}
	return nil
}
