package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// cleanWorkspacePath normalizes a workspace-relative path and rejects
// anything that would escape the working tree after normalization.
func cleanWorkspacePath(relPath string) (string, error) {
	cleaned := filepath.ToSlash(filepath.Clean(filepath.FromSlash(relPath)))
	if cleaned == "." || cleaned == "" || strings.HasPrefix(cleaned, "../") || cleaned == ".." || filepath.IsAbs(cleaned) {
		return "", errors.Wrapf(lib.ErrInvalidIdentifier, "path %q escapes the workspace", relPath)
	}
	return cleaned, nil
}

// AddFile stages one workspace file: the content is stored as a blob under
// its hash (skipped when an identical blob exists) and the (path, blob) pair
// is upserted into the index, preserving the order of other entries. Paths
// matching .gliteignore are refused. Returns the blob id.
func AddFile(root, actor, owner, repo, relPath string) (string, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return "", err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return "", err
	}
	cleaned, err := cleanWorkspacePath(relPath)
	if err != nil {
		return "", err
	}
	if lib.IsIgnored(repoRoot, cleaned) {
		return "", errors.Wrapf(lib.ErrConflict, "%s is ignored by %s", cleaned, lib.IgnoreFileName)
	}
	source := filepath.Join(lib.WorkspaceDir(repoRoot), filepath.FromSlash(cleaned))
	if _, err := os.Stat(source); err != nil {
		return "", errors.Wrapf(err, "file not found in workspace: %s", cleaned)
	}
	blobID, err := lib.WriteBlobFromFile(repoRoot, source)
	if err != nil {
		return "", err
	}
	entries, err := lib.ReadIndex(repoRoot)
	if err != nil {
		return "", err
	}
	entries = lib.UpsertIndexEntry(entries, cleaned, blobID)
	if err := lib.WriteIndex(repoRoot, entries); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"repo": lib.RepoKey(owner, repo), "path": cleaned, "blob": blobID}).Debug("staged file")
	return blobID, nil
}

// Status returns the index entries in their stored order.
func Status(root, actor, owner, repo string) ([]types.IndexEntry, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return nil, err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return nil, err
	}
	return lib.ReadIndex(repoRoot)
}

// RemoveFile unstages a path and deletes the working-tree file if present.
func RemoveFile(root, actor, owner, repo, relPath string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	entries, err := lib.ReadIndex(repoRoot)
	if err != nil {
		return err
	}
	entries, found := lib.RemoveIndexEntry(entries, relPath)
	if !found {
		return errors.Wrap(lib.ErrFileNotStaged, relPath)
	}
	if err := lib.WriteIndex(repoRoot, entries); err != nil {
		return err
	}
	workspaceFile := filepath.Join(lib.WorkspaceDir(repoRoot), filepath.FromSlash(relPath))
	if _, err := os.Stat(workspaceFile); err == nil {
		if err := os.Remove(workspaceFile); err != nil {
			return errors.Wrapf(err, "removing %s from workspace", relPath)
		}
	}
	return nil
}

// ResetFile unstages a path without touching the working tree.
func ResetFile(root, actor, owner, repo, relPath string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	entries, err := lib.ReadIndex(repoRoot)
	if err != nil {
		return err
	}
	entries, found := lib.RemoveIndexEntry(entries, relPath)
	if !found {
		return errors.Wrap(lib.ErrFileNotStaged, relPath)
	}
	return lib.WriteIndex(repoRoot, entries)
}

// Diff returns a listing of the currently staged paths. True content diff is
// not part of this engine.
func Diff(root, actor, owner, repo string) (string, error) {
	entries, err := Status(root, actor, owner, repo)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "No changes staged.", nil
	}
	var b strings.Builder
	b.WriteString("Staged changes:\n")
	for _, entry := range entries {
		b.WriteString("  " + entry.Path + "\n")
	}
	return b.String(), nil
}

// AddIgnorePattern appends one pattern to the repository's .gliteignore.
func AddIgnorePattern(root, actor, owner, repo, pattern string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	return lib.AddIgnorePattern(repoRoot, pattern)
}
