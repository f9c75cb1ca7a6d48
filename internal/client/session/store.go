// Package session owns the client's credential token and last-known identity.
//
// The backend issues an opaque bearer token on login/register; this package
// persists it in a single named slot of the local store, hands it to the HTTP
// client on demand, and deletes it on logout. Alongside the token it keeps
// the last authenticated identity so views can fall back to it when the
// server is unreachable.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wikiweb/wikictl/internal/client/models"
	"github.com/wikiweb/wikictl/internal/client/repositories/localstore"
	"github.com/wikiweb/wikictl/internal/dbx"
)

// Storage slot names. tokenKey is the single credential token slot; the
// identity keys cache the signed-in user for offline fallback.
const (
	tokenKey        = "token"
	identityIDKey   = "session:id"
	identityNameKey = "session:name"
	identityEmail   = "session:email"
	identityRoleKey = "session:role"
)

// Store reads and writes session state in the client database. Multi-key
// writes run in one transaction so a crash never leaves a token without its
// identity or vice versa.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() localstore.Repository {
	return localstore.NewSQLiteRepository(s.db)
}

// Token returns the stored credential token, or "" when none is present.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.repo().Get(ctx, tokenKey)
}

// HasToken reports whether a credential token is present. It never validates
// the token against the backend; a stale token still reports true and the
// first authenticated call surfaces the expiry.
func (s *Store) HasToken(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Save persists the token and, when user is non-nil, the identity cache,
// atomically.
func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, tokenKey, token); err != nil {
			return err
		}
		if user == nil {
			return nil
		}
		if err := repo.Set(ctx, identityIDKey, user.ID); err != nil {
			return err
		}
		if err := repo.Set(ctx, identityNameKey, user.Name); err != nil {
			return err
		}
		if err := repo.Set(ctx, identityEmail, user.Email); err != nil {
			return err
		}
		return repo.Set(ctx, identityRoleKey, string(user.Role))
	})
}

// Clear deletes the token and the cached identity. Used on logout; performs
// no network call.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		for _, key := range []string{tokenKey, identityIDKey, identityNameKey, identityEmail, identityRoleKey} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Identity returns the cached last-known identity, or nil when nothing was
// saved. The record may be stale; it is a display fallback, not an
// authorization source.
func (s *Store) Identity(ctx context.Context) (*models.User, error) {
	repo := s.repo()

	email, err := repo.Get(ctx, identityEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached identity: %w", err)
	}
	if email == "" {
		return nil, nil
	}

	id, err := repo.Get(ctx, identityIDKey)
	if err != nil {
		return nil, err
	}
	name, err := repo.Get(ctx, identityNameKey)
	if err != nil {
		return nil, err
	}
	role, err := repo.Get(ctx, identityRoleKey)
	if err != nil {
		return nil, err
	}

	return &models.User{ID: id, Name: name, Email: email, Role: models.Role(role)}, nil
}
