package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikiweb/wikictl/internal/client/models"
)

func lookupFrom(m map[string]string) AvatarLookup {
	return func(email string) string { return m[email] }
}

func emailsOf(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Email
	}
	return out
}

func TestReconcile_AttachesCachedAvatars(t *testing.T) {
	fetched := []models.User{
		{ID: "1", Name: "Alice", Email: "alice@example.org", Role: models.RoleAdmin},
		{ID: "2", Name: "Bob", Email: "bob@example.org", Role: models.RoleViewer, AvatarURL: "server-url"},
	}
	cache := lookupFrom(map[string]string{
		"alice@example.org": "cached-alice",
		"bob@example.org":   "cached-bob",
	})

	got := Reconcile(fetched, &models.User{Email: "alice@example.org", Role: models.RoleAdmin}, cache)

	require.Len(t, got, 2)
	assert.Equal(t, "cached-alice", got[0].AvatarURL)
	assert.Equal(t, "server-url", got[1].AvatarURL, "server-supplied avatars win over the cache")
}

func TestReconcile_PrependsMissingSessionIdentity(t *testing.T) {
	fetched := []models.User{
		{ID: "2", Name: "Bob", Email: "bob@example.org", Role: models.RoleViewer},
	}
	session := &models.User{ID: "9", Name: "Alice", Email: "Alice@Example.org", Role: models.RoleAdmin}

	got := Reconcile(fetched, session, nil)

	require.Len(t, got, 2)
	require.Equal(t, "Alice@Example.org", got[0].Email, "session identity must come first")

	count := 0
	for _, u := range got {
		if u.SameEmail("alice@example.org") {
			count++
		}
	}
	require.Equal(t, 1, count, "session identity must appear exactly once")
}

func TestReconcile_SynthesizedEntryDefaults(t *testing.T) {
	session := &models.User{Name: "Alice", Email: "alice@example.org"}
	cache := lookupFrom(map[string]string{"alice@example.org": "cached"})

	got := Reconcile(nil, session, cache)

	require.Len(t, got, 1)
	assert.Equal(t, "me", got[0].ID)
	assert.Equal(t, models.RoleAdmin, got[0].Role, "role defaults to admin when unset")
	assert.Equal(t, "cached", got[0].AvatarURL)
}

func TestReconcile_CaseInsensitiveMatchNoDuplicate(t *testing.T) {
	fetched := []models.User{
		{ID: "1", Name: "Alice", Email: "ALICE@example.org", Role: models.RoleAdmin},
	}
	session := &models.User{ID: "1", Name: "Alice", Email: "alice@example.org", Role: models.RoleAdmin}

	got := Reconcile(fetched, session, nil)
	require.Equal(t, []string{"ALICE@example.org"}, emailsOf(got))
}

func TestReconcile_PatchesAvatarOnExistingEntry(t *testing.T) {
	fetched := []models.User{
		{ID: "1", Name: "Alice", Email: "alice@example.org", Role: models.RoleAdmin},
	}
	session := &models.User{Email: "alice@example.org", AvatarURL: "session-avatar"}

	got := Reconcile(fetched, session, nil)
	require.Equal(t, "session-avatar", got[0].AvatarURL)
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	fetched := []models.User{
		{ID: "1", Name: "Alice", Email: "alice@example.org", Role: models.RoleAdmin},
	}
	cache := lookupFrom(map[string]string{"alice@example.org": "cached"})

	_ = Reconcile(fetched, &models.User{Email: "alice@example.org", AvatarURL: "x"}, cache)
	require.Empty(t, fetched[0].AvatarURL)
}

func TestReconcile_NilSessionReturnsFetched(t *testing.T) {
	fetched := []models.User{{ID: "1", Email: "a@b.c", Role: models.RoleViewer}}
	got := Reconcile(fetched, nil, nil)
	require.Equal(t, fetched, got)
}

func TestPartition_SplitsByRole(t *testing.T) {
	users := []models.User{
		{ID: "1", Role: models.RoleAdmin},
		{ID: "2", Role: models.RoleEditor},
		{ID: "3", Role: models.RoleViewer},
		{ID: "4", Role: models.RoleAdmin},
	}

	b := Partition(users)
	assert.Len(t, b.Admins, 2)
	assert.Len(t, b.Editors, 1)
	assert.Len(t, b.Viewers, 1)
}

func TestPartition_UnrecognizedRoleGoesNowhere(t *testing.T) {
	users := []models.User{
		{ID: "1", Role: "owner"},
		{ID: "2", Role: ""},
		{ID: "3", Role: models.RoleViewer},
	}

	b := Partition(users)
	assert.Empty(t, b.Admins)
	assert.Empty(t, b.Editors)
	require.Len(t, b.Viewers, 1)
}

func TestFilter_MatchesNameEmailAndRole(t *testing.T) {
	b := Buckets{
		Admins: []models.User{
			{Name: "Alice Smith", Email: "alice@example.org", Role: models.RoleAdmin},
			{Name: "Carol", Email: "carol@wiki.dev", Role: models.RoleAdmin},
		},
		Viewers: []models.User{
			{Name: "Bob", Email: "bob@example.org", Role: models.RoleViewer},
		},
	}

	byName := b.Filter("SMITH")
	require.Len(t, byName.Admins, 1)
	assert.Empty(t, byName.Viewers)

	byEmail := b.Filter("example.org")
	require.Len(t, byEmail.Admins, 1)
	require.Len(t, byEmail.Viewers, 1)

	byRole := b.Filter("viewer")
	assert.Empty(t, byRole.Admins)
	require.Len(t, byRole.Viewers, 1)
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	b := Buckets{Admins: []models.User{{Name: "Alice"}}}
	require.Equal(t, b, b.Filter(""))
}
