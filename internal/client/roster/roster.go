// Package roster reconciles the server's user list with locally cached state
// for the directory view.
//
// Reconciliation is pure: it takes the fetched records, the current session
// identity, and an avatar lookup, and returns the display roster. No network
// or storage dependency, so the merge rules are unit-testable on their own.
package roster

import (
	"strings"

	"github.com/wikiweb/wikictl/internal/client/models"
)

// AvatarLookup returns the locally cached avatar URL for an email, or "".
type AvatarLookup func(email string) string

// syntheticID marks a roster entry synthesized from the session identity when
// the backend did not return one for it.
const syntheticID = "me"

// Reconcile merges the fetched roster with local avatar overrides and
// guarantees the session identity appears exactly once.
//
// Rules, in order:
//  1. Every fetched record without a server-supplied avatar gets the cached
//     avatar for its email, when one exists.
//  2. If no fetched record matches the session email (case-insensitive), a
//     record synthesized from the session identity is prepended, with the
//     role defaulted to admin when unset.
//  3. If a match exists but has no avatar, the session's avatar (or the
//     cached one) is patched in.
//
// The input slice is not mutated. A nil session leaves the fetched set as-is.
func Reconcile(fetched []models.User, session *models.User, lookup AvatarLookup) []models.User {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}

	users := make([]models.User, len(fetched))
	copy(users, fetched)

	for i := range users {
		if users[i].AvatarURL == "" && users[i].Email != "" {
			users[i].AvatarURL = lookup(users[i].Email)
		}
	}

	if session == nil || session.Email == "" {
		return users
	}

	local := session.AvatarURL
	if local == "" {
		local = lookup(session.Email)
	}

	idx := -1
	for i := range users {
		if users[i].SameEmail(session.Email) {
			idx = i
			break
		}
	}

	if idx == -1 {
		me := models.User{
			ID:        session.ID,
			Name:      session.Name,
			Email:     session.Email,
			Role:      session.Role,
			AvatarURL: local,
		}
		if me.ID == "" {
			me.ID = syntheticID
		}
		if me.Role == "" {
			me.Role = models.RoleAdmin
		}
		return append([]models.User{me}, users...)
	}

	if users[idx].AvatarURL == "" && local != "" {
		users[idx].AvatarURL = local
	}
	return users
}

// Buckets is the roster partitioned by role for rendering.
type Buckets struct {
	Admins  []models.User
	Editors []models.User
	Viewers []models.User
}

// Partition splits users into the three known role buckets. Records with an
// unrecognized role land in no bucket; the display simply omits them.
func Partition(users []models.User) Buckets {
	var b Buckets
	for _, u := range users {
		switch u.Role {
		case models.RoleAdmin:
			b.Admins = append(b.Admins, u)
		case models.RoleEditor:
			b.Editors = append(b.Editors, u)
		case models.RoleViewer:
			b.Viewers = append(b.Viewers, u)
		}
	}
	return b
}

// Filter applies a case-insensitive substring query across name, email, and
// role to each bucket independently. An empty query returns b unchanged.
func (b Buckets) Filter(query string) Buckets {
	if query == "" {
		return b
	}
	q := strings.ToLower(query)
	return Buckets{
		Admins:  filterUsers(b.Admins, q),
		Editors: filterUsers(b.Editors, q),
		Viewers: filterUsers(b.Viewers, q),
	}
}

func filterUsers(users []models.User, q string) []models.User {
	var out []models.User
	for _, u := range users {
		if matches(u, q) {
			out = append(out, u)
		}
	}
	return out
}

func matches(u models.User, q string) bool {
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Email), q) ||
		strings.Contains(strings.ToLower(string(u.Role)), q)
}
