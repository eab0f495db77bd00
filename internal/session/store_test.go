package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, store.Authenticated())

	require.NoError(t, store.Save("tok-123", "coach"))
	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "coach", store.Username())

	// A new process over the same directory starts authenticated.
	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.True(t, reopened.Authenticated())
	token, _ = reopened.Token()
	assert.Equal(t, "tok-123", token)
}

func TestStoreClear(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("tok-123", "coach"))
	require.NoError(t, store.Clear())

	assert.False(t, store.Authenticated())
	assert.NoFileExists(t, filepath.Join(dir, FileName))

	// Clearing an already empty store is fine.
	require.NoError(t, store.Clear())

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Authenticated())
}

func TestOpenCorruptFileStartsLoggedOut(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("tok", "u"))

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Authenticated())
}
