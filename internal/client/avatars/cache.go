// Package avatars is the local avatar override cache.
//
// Users can set an avatar locally before (or instead of) the server knowing
// about it. Entries live in the client store under avatar:<email> keys and
// never expire. The cache is consulted while rendering the user directory and
// written by the avatar command.
package avatars

import (
	"context"
	"strings"

	"github.com/wikiweb/wikictl/internal/client/repositories/localstore"
)

const keyPrefix = "avatar:"

// Lookup is the read side of the cache, enough for roster reconciliation.
type Lookup interface {
	Get(ctx context.Context, email string) string
}

// Cache stores avatar URLs keyed by lowercase-normalized email. All methods
// degrade to the empty value on storage failure; an unavailable store must
// never break a view.
type Cache struct {
	repo localstore.Repository
}

func NewCache(repo localstore.Repository) *Cache {
	return &Cache{repo: repo}
}

// Get returns the cached avatar URL for email, or "". It first tries the key
// with the email exactly as provided, then the lowercase-normalized key, so
// entries written before normalization was introduced stay reachable.
func (c *Cache) Get(ctx context.Context, email string) string {
	if email == "" {
		return ""
	}

	if v, err := c.repo.Get(ctx, keyPrefix+email); err == nil && v != "" {
		return v
	}

	v, err := c.repo.Get(ctx, keyPrefix+strings.ToLower(email))
	if err != nil {
		return ""
	}
	return v
}

// Set stores url under the lowercase-normalized key for email. Failures are
// swallowed; the caller cannot do anything useful with them.
func (c *Cache) Set(ctx context.Context, email, url string) {
	if email == "" {
		return
	}
	_ = c.repo.Set(ctx, keyPrefix+strings.ToLower(email), url)
}
