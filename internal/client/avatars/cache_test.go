package avatars

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory localstore.Repository that can be told to fail.
type fakeRepo struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string]string{}}
}

func (f *fakeRepo) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRepo) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRepo) List(_ context.Context) (map[string]string, error) { return f.data, nil }
func (f *fakeRepo) Clear(_ context.Context) error                     { f.data = map[string]string{}; return nil }

func TestSetGet_NormalizesEmail(t *testing.T) {
	repo := newFakeRepo()
	c := NewCache(repo)
	ctx := context.Background()

	c.Set(ctx, "Alice@Example.ORG", "https://cdn/a.png")

	require.Equal(t, "https://cdn/a.png", c.Get(ctx, "alice@example.org"))
	require.Equal(t, "https://cdn/a.png", c.Get(ctx, "Alice@Example.ORG"),
		"mixed-case lookup must fall back to the normalized key")
}

func TestGet_LegacyUnnormalizedKey(t *testing.T) {
	repo := newFakeRepo()
	// Entry written before normalization was introduced.
	repo.data["avatar:Bob@Example.org"] = "legacy-url"

	c := NewCache(repo)
	require.Equal(t, "legacy-url", c.Get(context.Background(), "Bob@Example.org"))
}

func TestGet_MissingEntry(t *testing.T) {
	c := NewCache(newFakeRepo())
	require.Equal(t, "", c.Get(context.Background(), "nobody@example.org"))
}

func TestGet_EmptyEmail(t *testing.T) {
	c := NewCache(newFakeRepo())
	require.Equal(t, "", c.Get(context.Background(), ""))
}

func TestGet_StorageFailureDegradesToEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("storage unavailable")

	c := NewCache(repo)
	require.Equal(t, "", c.Get(context.Background(), "a@b.c"))
}

func TestSet_StorageFailureIsSwallowed(t *testing.T) {
	repo := newFakeRepo()
	repo.setErr = errors.New("quota exceeded")

	c := NewCache(repo)
	c.Set(context.Background(), "a@b.c", "url")

	require.Empty(t, repo.data)
}
