package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "original/abc123.png", []byte("payload"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/original/abc123.png", url)

	got, err := os.ReadFile(filepath.Join(dir, "original", "abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestLocalStore_PutIsIdempotentPerKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/uploads")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Put(ctx, "original/dup.txt", []byte("same"), "text/plain")
	require.NoError(t, err)
	url, err := store.Put(ctx, "original/dup.txt", []byte("same"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/original/dup.txt", url)

	entries, err := os.ReadDir(filepath.Join(dir, "original"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files or duplicates must remain")
}

func TestLocalStore_PutHonorsCancelledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Put(ctx, "original/none.txt", []byte("x"), "text/plain")
	assert.Error(t, err)
}

func TestLocalStore_URL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "https://cdn.example.com/u/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/u/original/k.gif", store.URL("original/k.gif"))
}
