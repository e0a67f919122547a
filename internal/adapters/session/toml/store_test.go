package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filestore "github.com/paseo-app/paseo-cli/internal/adapters/secrets/file"
	"github.com/paseo-app/paseo-cli/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	secrets := filestore.NewStore(filepath.Join(home, configDirName, "secrets"))
	store, err := NewStore(viper.New(), secrets)
	require.NoError(t, err)

	return store
}

func TestHasTokenFalseOnFreshStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.False(t, store.HasToken(ctx))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestTokenRoundTripLastWriteWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveToken(ctx, "abc123"))
	assert.True(t, store.HasToken(ctx))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	require.NoError(t, store.SaveToken(ctx, "def456"))
	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "def456", token)
}

func TestSaveUserInfoOverwritesAllFieldsTogether(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserInfo(ctx, domain.CachedProfile{
		Name:  "Ana",
		Email: "ana@x.com",
		Photo: "/storage/ana.jpg",
	}))

	info := store.UserInfo(ctx)
	assert.Equal(t, "Ana", info.Name)
	assert.Equal(t, "ana@x.com", info.Email)
	assert.Equal(t, "/storage/ana.jpg", info.Photo)

	// A later save with only the email set blanks the other fields; there
	// is no partial update.
	require.NoError(t, store.SaveUserInfo(ctx, domain.CachedProfile{Email: "ana@x.com"}))

	info = store.UserInfo(ctx)
	assert.Equal(t, "", info.Name)
	assert.Equal(t, "ana@x.com", info.Email)
	assert.Equal(t, "", info.Photo)
}

func TestClearRemovesTokenAndCachedProfile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveToken(ctx, "abc123"))
	require.NoError(t, store.SaveUserInfo(ctx, domain.CachedProfile{Name: "Ana", Email: "ana@x.com"}))

	require.NoError(t, store.Clear(ctx))

	assert.False(t, store.HasToken(ctx))
	assert.Equal(t, domain.CachedProfile{}, store.UserInfo(ctx))
}

func TestClearIsIdempotentWithoutSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestUserInfoToleratesMissingAndCorruptFile(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Equal(t, domain.CachedProfile{}, store.UserInfo(ctx))

	require.NoError(t, os.MkdirAll(filepath.Dir(store.profilePath), 0o700))
	require.NoError(t, os.WriteFile(store.profilePath, []byte("not = [valid"), 0o600))
	assert.Equal(t, domain.CachedProfile{}, store.UserInfo(ctx))
}

func TestProfileFileWrittenWithRestrictedMode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUserInfo(ctx, domain.CachedProfile{Name: "Ana"}))

	info, err := os.Stat(store.profilePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(profileFileMode), info.Mode().Perm())
}

func TestRejectsNewerSchemaVersion(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.profilePath), 0o700))
	require.NoError(t, os.WriteFile(store.profilePath, []byte("version = 99\n"), 0o600))

	_, err := store.readSchema()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported profile schema version")
}
