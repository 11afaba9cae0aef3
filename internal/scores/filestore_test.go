package scores

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFileStoreCreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")

	s, err := OpenFileStore(path, nil)
	require.NoError(t, err)
	defer s.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestFileStoreAppendKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s, err := OpenFileStore(path, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, Record{Name: "a", Score: 1, At: 100}))
	require.NoError(t, s.Append(ctx, Record{Name: "b", Score: 5, At: 200}))

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{Name: "a", Score: 1, At: 100},
		{Name: "b", Score: 5, At: 200},
	}, all)

	// The file holds a plain JSON array with the wire field names.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "b", raw[1]["name"])
	assert.EqualValues(t, 200, raw[1]["at"])
}

func TestFileStoreKeepsExistingRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"old","score":7,"at":1}]`), 0o644))

	s, err := OpenFileStore(path, nil)
	require.NoError(t, err)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{{Name: "old", Score: 7, At: 1}}, all)
}

func TestFileStoreMalformedReadsEmpty(t *testing.T) {
	tests := []string{
		`not json`,
		`{"name":"x"}`,
		`42`,
	}

	for _, content := range tests {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		s, err := OpenFileStore(path, nil)
		require.NoError(t, err)

		all, err := s.All(context.Background())
		require.NoError(t, err, "content %q", content)
		assert.Empty(t, all, "content %q", content)

		// The next write replaces the malformed content.
		require.NoError(t, s.Append(context.Background(), Record{Name: "n", Score: 1}))
		all, err = s.All(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 1)
	}
}

func TestFileStoreConcurrentAppends(t *testing.T) {
	s, err := OpenFileStore(filepath.Join(t.TempDir(), "scores.json"), nil)
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Append(ctx, Record{Name: "p", Score: int64(i)}))
		}(i)
	}
	wg.Wait()

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
