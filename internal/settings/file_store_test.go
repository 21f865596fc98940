package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streamsched/internal/structures"
	"streamsched/internal/testutil"
)

func TestFileStore_PlainRoundtrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(structures.FileStoreConfig{Dir: dir}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "stream-schedule", []byte(`[{"weekday":"Friday"}]`)))

	raw, err := os.ReadFile(filepath.Join(dir, "stream-schedule.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"weekday":"Friday"}]`, string(raw))

	val, found, err := store.Get(ctx, "stream-schedule")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, raw, val)
}

func TestFileStore_CompressedRoundtrip(t *testing.T) {
	dir := t.TempDir()
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	store, err := NewFileStore(structures.FileStoreConfig{Dir: dir, Compress: true}, comp)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "stream-schedule", []byte(`[]`)))
	_, err = os.Stat(filepath.Join(dir, "stream-schedule.json.zst"))
	require.NoError(t, err)

	val, found, err := store.Get(ctx, "stream-schedule")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[]`), val)
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(structures.FileStoreConfig{Dir: t.TempDir()}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("1")))
	require.NoError(t, store.Save(ctx, "k", []byte("2")))

	val, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStore(structures.FileStoreConfig{Dir: t.TempDir()}, nil)
	require.NoError(t, err)

	_, found, err := store.Get(context.Background(), "stream-schedule")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store, err := NewFileStore(structures.FileStoreConfig{Dir: t.TempDir()}, nil)
	require.NoError(t, err)

	assert.Error(t, store.Save(context.Background(), "../escape", []byte("x")))
	_, _, err = store.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestFileStore_DecompressError(t *testing.T) {
	dir := t.TempDir()
	comp := &testutil.MockCompressor{
		DecompressFn: func(b []byte) ([]byte, error) {
			return nil, assert.AnError
		},
	}
	store, err := NewFileStore(structures.FileStoreConfig{Dir: dir, Compress: true}, comp)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "k", []byte("x")))

	_, _, err = store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, assert.AnError)
}
