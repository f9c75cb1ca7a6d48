// Package models defines the client-side working copies of backend records:
// users with their roles, documents, and document revisions. The backend owns
// these records; the client only augments them (e.g. locally cached avatars).
package models

import "strings"

// Role is the closed set of access levels known to the client.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// ParseRole validates a free-form role string against the known set.
// The boolean reports whether the value is recognized.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEditor:
		return RoleEditor, true
	case RoleViewer:
		return RoleViewer, true
	}
	return "", false
}

// Valid reports whether r is one of admin, editor, viewer.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// User is a read-only working copy of a backend user record. AvatarURL may be
// filled in client-side from the local avatar cache when the server did not
// supply one.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	AvatarURL   string `json:"avatarURL,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// SameEmail reports whether the user's email equals other, compared
// case-insensitively. Email is the identity key across the roster.
func (u User) SameEmail(other string) bool {
	return strings.EqualFold(u.Email, other)
}
