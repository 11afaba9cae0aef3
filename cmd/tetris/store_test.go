package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/scores"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func withStoreFlags(t *testing.T, kind, path string) {
	t.Helper()
	oldKind, oldPath := flagStore, flagScoresPath
	flagStore, flagScoresPath = kind, path
	t.Cleanup(func() {
		flagStore, flagScoresPath = oldKind, oldPath
	})
}

func TestOpenStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	withStoreFlags(t, storeFile, path)

	store, err := openStore(nil)
	require.NoError(t, err)
	defer store.Close()

	fs, ok := store.(*scores.FileStore)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
}

func TestOpenStoreSQLite(t *testing.T) {
	withStoreFlags(t, storeSQLite, filepath.Join(t.TempDir(), "scores.db"))

	store, err := openStore(nil)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*storage.Store)
	require.True(t, ok)

	svc := scores.NewService(store)
	require.NoError(t, svc.Submit(context.Background(), "ada", 40))

	top, err := svc.Leaderboard(context.Background(), scores.DefaultLimit)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "ada", top[0].Name)
}

func TestOpenStoreUnknownKind(t *testing.T) {
	withStoreFlags(t, "redis", "")

	_, err := openStore(nil)
	assert.Error(t, err)
}
