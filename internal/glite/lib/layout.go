package lib

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// EnsureRoot initializes the workspace root on first use: the root directory
// itself, the reserved _remotes directory, and empty registry files. It is
// idempotent.
func EnsureRoot(root string) error {
	if err := os.MkdirAll(filepath.Join(root, RemotesDirName), 0755); err != nil {
		return errors.Wrap(err, "creating workspace root")
	}
	for _, path := range []string{UsersPath(root), PermissionsPath(root)} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, nil, 0644); err != nil {
				return errors.Wrapf(err, "creating %s", filepath.Base(path))
			}
		}
	}
	return nil
}

// EnsureUserFolder creates the per-user directory under the root.
func EnsureUserFolder(root, username string) error {
	if err := os.MkdirAll(filepath.Join(root, username), 0755); err != nil {
		return errors.Wrapf(err, "creating user folder for %s", username)
	}
	return nil
}

// RepoExists reports whether the storage layer has the (owner, repo) pair.
func RepoExists(root, owner, repo string) bool {
	info, err := os.Stat(RepoDir(root, owner, repo))
	return err == nil && info.IsDir()
}

// ListUserRepos returns the repository names under one user's directory,
// sorted lexicographically. A missing user directory yields an empty list.
func ListUserRepos(root, username string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(root, username))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "listing repositories of %s", username)
	}
	var repos []string
	for _, entry := range entries {
		if entry.IsDir() {
			repos = append(repos, entry.Name())
		}
	}
	sort.Strings(repos)
	return repos, nil
}

// ListAllRepos returns every (owner, repo) pair across all user directories,
// sorted. Underscore-prefixed top-level names are reserved and skipped.
func ListAllRepos(root string) ([]types.RepoRef, error) {
	userEntries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "listing workspace root")
	}
	var repos []types.RepoRef
	for _, userEntry := range userEntries {
		if !userEntry.IsDir() || strings.HasPrefix(userEntry.Name(), "_") {
			continue
		}
		repoEntries, err := os.ReadDir(filepath.Join(root, userEntry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "listing repositories of %s", userEntry.Name())
		}
		for _, repoEntry := range repoEntries {
			if repoEntry.IsDir() {
				repos = append(repos, types.RepoRef{Owner: userEntry.Name(), Name: repoEntry.Name()})
			}
		}
	}
	sort.Slice(repos, func(i, j int) bool {
		if repos[i].Owner != repos[j].Owner {
			return repos[i].Owner < repos[j].Owner
		}
		return repos[i].Name < repos[j].Name
	})
	return repos, nil
}

// CreateRepoSkeleton creates the full repository skeleton: metadata directory
// with HEAD, config, empty index and log, an empty main ref, the objects and
// tag directories, and the working tree. Fails if the directory exists.
func CreateRepoSkeleton(root, owner, repo string) error {
	repoRoot := RepoDir(root, owner, repo)
	if _, err := os.Stat(repoRoot); err == nil {
		return errors.Wrapf(ErrRepoExists, "%s/%s", owner, repo)
	}
	for _, dir := range []string{ObjectsDir(repoRoot), HeadsDir(repoRoot), TagsDir(repoRoot), WorkspaceDir(repoRoot)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "creating repository skeleton")
		}
	}
	files := map[string][]byte{
		HeadPath(repoRoot):                     []byte("ref: " + DefaultBranch + "\n"),
		BranchRefPath(repoRoot, DefaultBranch): nil,
		IndexPath(repoRoot):                    nil,
		LogPath(repoRoot):                      nil,
	}
	for path, content := range files {
		if err := os.WriteFile(path, content, 0644); err != nil {
			return errors.Wrapf(err, "writing %s", filepath.Base(path))
		}
	}
	cfg := types.RepoConfig{
		Name:       repo,
		Owner:      owner,
		Visibility: VisibilityPrivate,
		Created:    Timestamp(),
	}
	return WriteRepoConfig(repoRoot, cfg)
}

// DeleteRepo removes a repository directory and everything under it.
func DeleteRepo(root, owner, repo string) error {
	if !RepoExists(root, owner, repo) {
		return errors.Wrapf(ErrRepoNotFound, "%s/%s", owner, repo)
	}
	if err := os.RemoveAll(RepoDir(root, owner, repo)); err != nil {
		return errors.Wrapf(err, "deleting %s/%s", owner, repo)
	}
	return nil
}
