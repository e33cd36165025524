package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	session "github.com/edukit/go-session"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryTokenStore()

	_, err := store.Get(ctx)
	assert.True(t, session.IsNoToken(err))

	require.NoError(t, store.Set(ctx, "abc"))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, store.Remove(ctx))
	_, err = store.Get(ctx)
	assert.True(t, session.IsNoToken(err))

	token, err = store.Seed("seeded").Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "seeded", token)
}

func TestFileTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state", "token")
		store := session.NewFileTokenStore(path)

		_, err := store.Get(ctx)
		assert.True(t, session.IsNoToken(err))

		require.NoError(t, store.Set(ctx, "abc"))

		// A new instance over the same path sees the token, the
		// reload-survival contract.
		reloaded := session.NewFileTokenStore(path)
		token, err := reloaded.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "abc", token)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		require.NoError(t, store.Remove(ctx))
		_, err = store.Get(ctx)
		assert.True(t, session.IsNoToken(err))
	})

	t.Run("whitespace and empty files count as absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte(" \n"), 0o600))

		store := session.NewFileTokenStore(path)
		_, err := store.Get(ctx)
		assert.True(t, session.IsNoToken(err))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		store := session.NewFileTokenStore(filepath.Join(t.TempDir(), "missing"))
		assert.NoError(t, store.Remove(ctx))
	})
}
