package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

func TestIndexRoundTrip(t *testing.T) {
	repoRoot := testRepoRoot(t)

	entries := []types.IndexEntry{
		{Path: "b.txt", BlobID: "1111"},
		{Path: "a.txt", BlobID: "2222"},
	}
	require.NoError(t, WriteIndex(repoRoot, entries))

	got, err := ReadIndex(repoRoot)
	require.NoError(t, err)
	// Stored order is preserved, not sorted.
	assert.Equal(t, entries, got)

	content, err := os.ReadFile(IndexPath(repoRoot))
	require.NoError(t, err)
	assert.Equal(t, "b.txt\t1111\na.txt\t2222\n", string(content))
}

func TestReadIndexTolerant(t *testing.T) {
	repoRoot := testRepoRoot(t)
	require.NoError(t, os.WriteFile(IndexPath(repoRoot), []byte("a.txt\t1111\n\nmalformed line\nb.txt\t2222\n"), 0644))

	got, err := ReadIndex(repoRoot)
	require.NoError(t, err)
	assert.Equal(t, []types.IndexEntry{
		{Path: "a.txt", BlobID: "1111"},
		{Path: "b.txt", BlobID: "2222"},
	}, got)
}

func TestUpsertIndexEntry(t *testing.T) {
	entries := []types.IndexEntry{
		{Path: "a.txt", BlobID: "1111"},
		{Path: "b.txt", BlobID: "2222"},
	}

	// Replacing keeps the position of the entry and everything after it.
	entries = UpsertIndexEntry(entries, "a.txt", "3333")
	assert.Equal(t, []types.IndexEntry{
		{Path: "a.txt", BlobID: "3333"},
		{Path: "b.txt", BlobID: "2222"},
	}, entries)

	entries = UpsertIndexEntry(entries, "c.txt", "4444")
	assert.Equal(t, "c.txt", entries[2].Path)
}

func TestRemoveIndexEntry(t *testing.T) {
	entries := []types.IndexEntry{
		{Path: "a.txt", BlobID: "1111"},
		{Path: "b.txt", BlobID: "2222"},
	}

	entries, found := RemoveIndexEntry(entries, "a.txt")
	assert.True(t, found)
	assert.Equal(t, []types.IndexEntry{{Path: "b.txt", BlobID: "2222"}}, entries)

	_, found = RemoveIndexEntry(entries, "nope.txt")
	assert.False(t, found)
}
