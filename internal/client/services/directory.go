package services

import (
	"context"
	"errors"

	"github.com/wikiweb/wikictl/internal/client/api"
	"github.com/wikiweb/wikictl/internal/client/avatars"
	"github.com/wikiweb/wikictl/internal/client/models"
	"github.com/wikiweb/wikictl/internal/client/roster"
	"github.com/wikiweb/wikictl/internal/logging"
)

// ErrNotAuthorized means the current session's role does not permit the
// directory view. The check is client-side convenience; the server enforces
// the real boundary.
var ErrNotAuthorized = errors.New("not authorized")

// advisoryFallback replaces raw transport errors in the directory view.
const advisoryFallback = "Failed to load users from server. Showing local account only."

// usersAPI is the transport slice the directory needs; *api.UsersAPI
// satisfies it.
type usersAPI interface {
	List(ctx context.Context) ([]models.User, error)
}

// Directory is the reconciled, partitioned, filtered roster ready to render.
// Advisory is non-empty when the server fetch failed and the view fell back
// to the session identity alone.
type Directory struct {
	Buckets  roster.Buckets
	Advisory string
}

// DirectoryService produces the user directory for the admin view.
type DirectoryService struct {
	users   usersAPI
	avatars avatars.Lookup
	log     logging.Logger
}

func NewDirectoryService(users usersAPI, av avatars.Lookup, log logging.Logger) *DirectoryService {
	return &DirectoryService{users: users, avatars: av, log: log}
}

// Load fetches and reconciles the roster for the current session.
//
// A non-admin session gets ErrNotAuthorized without any fetch. A failed
// fetch is not a hard failure: the roster degrades to the session identity
// and Advisory carries a displayable message.
func (s *DirectoryService) Load(ctx context.Context, current *models.User, query string) (*Directory, error) {
	if current == nil || current.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}

	advisory := ""
	fetched, err := s.users.List(ctx)
	if err != nil {
		s.log.Warn(ctx, "user roster fetch failed", "error", err)
		fetched = nil
		if errors.Is(err, api.ErrUnavailable) {
			advisory = advisoryFallback
		} else {
			advisory = err.Error()
		}
	}

	lookup := func(email string) string { return s.avatars.Get(ctx, email) }
	users := roster.Reconcile(fetched, current, lookup)
	buckets := roster.Partition(users).Filter(query)

	return &Directory{Buckets: buckets, Advisory: advisory}, nil
}
