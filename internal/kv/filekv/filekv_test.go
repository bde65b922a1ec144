package filekv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockerhub/boxhub/internal/kv"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	fs, err := New(path)
	require.NoError(t, err)
	return fs, path
}

func TestFileStore_SetGetRemove(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	_, err := fs.Get(ctx, "boxes")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)

	require.NoError(t, fs.Set(ctx, "boxes", `[{"id":"BOX-A"}]`))
	value, err := fs.Get(ctx, "boxes")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"BOX-A"}]`, value)

	require.NoError(t, fs.Set(ctx, "boxes", "[]"))
	value, err = fs.Get(ctx, "boxes")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	require.NoError(t, fs.Remove(ctx, "boxes"))
	_, err = fs.Get(ctx, "boxes")
	require.ErrorIs(t, err, kv.ErrKeyNotFound)

	// Removing an absent key is not an error.
	require.NoError(t, fs.Remove(ctx, "boxes"))
}

func TestFileStore_MultiOperations(t *testing.T) {
	fs, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.MultiSet(ctx, map[string]string{
		"boxes":         "[]",
		"currentUserId": "user-002",
	}))

	values, err := fs.MultiGet(ctx, []string{"boxes", "currentUserId", "missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"boxes":         "[]",
		"currentUserId": "user-002",
	}, values)

	require.NoError(t, fs.MultiRemove(ctx, []string{"boxes", "missing"}))
	values, err = fs.MultiGet(ctx, []string{"boxes", "currentUserId"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"currentUserId": "user-002"}, values)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	fs, path := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.Set(ctx, "history", "[]"))
	require.NoError(t, fs.Set(ctx, "abnormalAlertEnabled", "true"))

	reopened, err := New(path)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, "history")
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	value, err = reopened.Get(ctx, "abnormalAlertEnabled")
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	fs, err := New(path)
	require.NoError(t, err)

	values, err := fs.MultiGet(context.Background(), kv.AllKeys())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFileStore_CorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path)
	assert.Error(t, err)
}
