package commands

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

// Push replaces the repository's mirror under _remotes with a fresh copy of
// its .glite subtree and working tree. The mirror is destroyed and recreated;
// there is no merging of remote and local state.
func Push(root, actor, owner, repo string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	remoteRoot := lib.RemoteDir(root, owner, repo)
	if err := os.RemoveAll(remoteRoot); err != nil {
		return errors.Wrap(err, "clearing remote")
	}
	if err := os.MkdirAll(remoteRoot, 0755); err != nil {
		return errors.Wrap(err, "creating remote")
	}
	if err := lib.CopyDir(lib.GliteDir(repoRoot), lib.GliteDir(remoteRoot)); err != nil {
		return err
	}
	if err := lib.CopyDir(lib.WorkspaceDir(repoRoot), lib.WorkspaceDir(remoteRoot)); err != nil {
		return err
	}
	log.WithField("repo", lib.RepoKey(owner, repo)).Info("pushed to mirror")
	return nil
}

// Pull overwrites the local .glite subtree and working tree with the mirror's
// copies. Fails when no mirror exists.
func Pull(root, actor, owner, repo string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	remoteRoot := lib.RemoteDir(root, owner, repo)
	if _, err := os.Stat(remoteRoot); os.IsNotExist(err) {
		return errors.Wrapf(lib.ErrRepoNotFound, "no mirror for %s/%s", owner, repo)
	}
	if err := lib.CopyDir(lib.GliteDir(remoteRoot), lib.GliteDir(repoRoot)); err != nil {
		return err
	}
	if err := lib.CopyDir(lib.WorkspaceDir(remoteRoot), lib.WorkspaceDir(repoRoot)); err != nil {
		return err
	}
	log.WithField("repo", lib.RepoKey(owner, repo)).Info("pulled from mirror")
	return nil
}

// Fork copies owner/repo into the actor's namespace as <repo>-fork (falling
// back to -fork1, -fork2, ... when taken). Requires read access to the
// source. Returns the new repository name.
func Fork(root, actor, owner, repo string) (string, error) {
	sourceRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return "", err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return "", err
	}
	if err := lib.EnsureUserFolder(root, actor); err != nil {
		return "", err
	}

	base := repo + "-fork"
	name := base
	for i := 1; lib.RepoExists(root, actor, name); i++ {
		if i > 100 {
			return "", errors.Wrap(lib.ErrConflict, "could not find a free fork name")
		}
		name = base + strconv.Itoa(i)
	}
	if err := lib.CreateRepoSkeleton(root, actor, name); err != nil {
		return "", err
	}

	destRoot := lib.RepoDir(root, actor, name)
	if err := lib.CopyDir(lib.GliteDir(sourceRoot), lib.GliteDir(destRoot)); err != nil {
		return "", err
	}
	if err := lib.CopyDir(lib.WorkspaceDir(sourceRoot), lib.WorkspaceDir(destRoot)); err != nil {
		return "", err
	}
	// The copy brought the source's config along; relabel it for the fork.
	if err := lib.SetConfigValue(destRoot, "name", name); err != nil {
		return "", err
	}
	if err := lib.SetConfigValue(destRoot, "owner", actor); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"source": lib.RepoKey(owner, repo),
		"fork":   lib.RepoKey(actor, name),
	}).Info("forked repository")
	return name, nil
}

// Transfer moves a repository to a new owner's namespace and rewrites the
// permission-map key. Only the owner or an admin may transfer.
func Transfer(root, actor, owner, repo, newOwner string) error {
	if _, err := resolveRepo(root, owner, repo); err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(root, actor, owner, repo); err != nil {
		return err
	}
	exists, err := lib.UserExists(root, newOwner)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(lib.ErrUserNotFound, newOwner)
	}
	if lib.RepoExists(root, newOwner, repo) {
		return errors.Wrapf(lib.ErrConflict, "%s already has a repository named %s", newOwner, repo)
	}
	if err := lib.EnsureUserFolder(root, newOwner); err != nil {
		return err
	}
	oldPath := lib.RepoDir(root, owner, repo)
	newPath := lib.RepoDir(root, newOwner, repo)
	if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
		return errors.Wrap(err, "preparing target namespace")
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return errors.Wrapf(err, "moving %s/%s", owner, repo)
	}

	perms, err := lib.LoadPermissions(root)
	if err != nil {
		return err
	}
	oldKey := lib.RepoKey(owner, repo)
	if set, ok := perms[oldKey]; ok {
		// The new owner's access is now implied by ownership.
		delete(set, newOwner)
		perms[lib.RepoKey(newOwner, repo)] = set
		delete(perms, oldKey)
		if err := lib.SavePermissions(root, perms); err != nil {
			return err
		}
	}
	if err := lib.SetConfigValue(newPath, "owner", newOwner); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"repo": repo,
		"from": owner,
		"to":   newOwner,
	}).Info("transferred repository")
	return nil
}
