package cli

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/wikiweb/wikictl/internal/client/models"
	"github.com/wikiweb/wikictl/internal/client/services"
)

// Users renders the role-segmented user directory, optionally filtered by
// query. Non-admin sessions get the standard refusal text; a failed roster
// fetch degrades to the local account with an advisory line.
func (a *App) Users(ctx context.Context, query string) error {
	dir, err := a.directory.Load(ctx, a.currentUser, query)
	if errors.Is(err, services.ErrNotAuthorized) {
		fmt.Fprintln(a.out, "You are not authorized to view this page.")
		return nil
	}
	if err != nil {
		return err
	}

	if dir.Advisory != "" {
		fmt.Fprintln(a.out, dir.Advisory)
	}

	a.printBucket("Administrators", dir.Buckets.Admins)
	a.printBucket("Editors", dir.Buckets.Editors)
	a.printBucket("Viewers", dir.Buckets.Viewers)
	return nil
}

func (a *App) printBucket(title string, users []models.User) {
	fmt.Fprintf(a.out, "%s (%d)\n", title, len(users))
	if len(users) == 0 {
		fmt.Fprintln(a.out, "  No users in this category")
		return
	}
	for _, u := range users {
		a.printUser(u)
	}
}

func (a *App) printUser(u models.User) {
	fmt.Fprintf(a.out, "  [%s] %s <%s> %s", initial(u), u.Name, u.Email, u.Role)
	if u.DateOfBirth != "" {
		fmt.Fprintf(a.out, " born %s", u.DateOfBirth)
	}
	if u.AvatarURL != "" {
		fmt.Fprintf(a.out, " avatar %s", u.AvatarURL)
	}
	fmt.Fprintln(a.out)
}

// initial is the single-letter avatar placeholder: the first rune of the
// name, uppercased, falling back to the email, then to "?".
func initial(u models.User) string {
	for _, s := range []string{u.Name, u.Email} {
		for _, r := range s {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}

// Search asks the server for users matching q and prints them flat, without
// role segmentation. Authorization is enforced server-side.
func (a *App) Search(ctx context.Context, q string) error {
	users, err := a.users.Search(ctx, q)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}
	for _, u := range users {
		a.printUser(u)
	}
	return nil
}

// Avatar stores url as the local avatar override for the current account.
// The override is client-side only and shows up in the directory view.
func (a *App) Avatar(ctx context.Context, url string) error {
	if a.currentUser == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.avatars.Set(ctx, a.currentUser.Email, url)
	fmt.Fprintln(a.out, "Avatar updated.")
	return nil
}
