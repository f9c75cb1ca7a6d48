package localstore

import (
	"context"
)

// Repository is the client-side persistent key-value store. It backs the
// credential token slot and the avatar:<email> key family, standing in for
// the browser's localStorage.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
