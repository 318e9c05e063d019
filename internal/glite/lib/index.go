package lib

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// ReadIndex parses the staged-entry index in stored order. Blank or malformed
// lines are skipped.
func ReadIndex(repoRoot string) ([]types.IndexEntry, error) {
	content, err := os.ReadFile(IndexPath(repoRoot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading index")
	}
	var entries []types.IndexEntry
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			continue
		}
		entries = append(entries, types.IndexEntry{Path: parts[0], BlobID: parts[1]})
	}
	return entries, nil
}

// WriteIndex replaces the index with the given entries in order.
func WriteIndex(repoRoot string, entries []types.IndexEntry) error {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(entry.Path)
		b.WriteByte('\t')
		b.WriteString(entry.BlobID)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(IndexPath(repoRoot), []byte(b.String()), 0644); err != nil {
		return errors.Wrap(err, "writing index")
	}
	return nil
}

// UpsertIndexEntry replaces the blob id of an existing path in place, or
// appends a new entry. The ordering of other entries is preserved.
func UpsertIndexEntry(entries []types.IndexEntry, path, blobID string) []types.IndexEntry {
	for i := range entries {
		if entries[i].Path == path {
			entries[i].BlobID = blobID
			return entries
		}
	}
	return append(entries, types.IndexEntry{Path: path, BlobID: blobID})
}

// RemoveIndexEntry drops the entry for path. The second return value reports
// whether the path was present.
func RemoveIndexEntry(entries []types.IndexEntry, path string) ([]types.IndexEntry, bool) {
	for i := range entries {
		if entries[i].Path == path {
			return append(entries[:i], entries[i+1:]...), true
		}
	}
	return entries, false
}
