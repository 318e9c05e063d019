// Package commands implements the repository service and the permission
// model over the storage layer: staging, committing, branching, merging,
// tagging, mirror push/pull, and user/collaborator management. Every exported
// function takes the workspace root explicitly, and every operation performed
// on behalf of a user takes the acting username; the engine holds no implicit
// global state.
package commands

import (
	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

// requireActor rejects operations that need an active session.
func requireActor(actor string) error {
	if actor == "" {
		return lib.ErrNotLoggedIn
	}
	return nil
}

// IsAdmin reports whether actor holds the admin role.
func IsAdmin(root, actor string) (bool, error) {
	user, err := lib.FindUser(root, actor)
	if err != nil {
		if errors.Is(err, lib.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// HasWriteAccess reports whether actor may modify owner/repo: admins, the
// owner, and listed collaborators.
func HasWriteAccess(root, actor, owner, repo string) (bool, error) {
	if actor == owner {
		return true, nil
	}
	admin, err := IsAdmin(root, actor)
	if err != nil {
		return false, err
	}
	if admin {
		return true, nil
	}
	perms, err := lib.LoadPermissions(root)
	if err != nil {
		return false, err
	}
	return perms[lib.RepoKey(owner, repo)][actor], nil
}

// HasReadAccess reports whether actor may view owner/repo: anyone with write
// access, plus everyone when the repository is public.
func HasReadAccess(root, actor, owner, repo string) (bool, error) {
	canWrite, err := HasWriteAccess(root, actor, owner, repo)
	if err != nil {
		return false, err
	}
	if canWrite {
		return true, nil
	}
	return lib.GetVisibility(root, owner, repo) == lib.VisibilityPublic, nil
}

func requireWrite(root, actor, owner, repo string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	ok, err := HasWriteAccess(root, actor, owner, repo)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(lib.ErrPermissionDenied, "write access to %s/%s required", owner, repo)
	}
	return nil
}

func requireRead(root, actor, owner, repo string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	ok, err := HasReadAccess(root, actor, owner, repo)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(lib.ErrPermissionDenied, "repository %s/%s is private", owner, repo)
	}
	return nil
}

// requireOwnerOrAdmin guards the operations collaborators may not perform:
// visibility toggles, collaborator management, transfer.
func requireOwnerOrAdmin(root, actor, owner, repo string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor == owner {
		return nil
	}
	admin, err := IsAdmin(root, actor)
	if err != nil {
		return err
	}
	if !admin {
		return errors.Wrapf(lib.ErrPermissionDenied, "only the owner or an admin may manage %s/%s", owner, repo)
	}
	return nil
}

// resolveRepo locates a repository and verifies its skeleton.
func resolveRepo(root, owner, repo string) (string, error) {
	if !lib.RepoExists(root, owner, repo) {
		return "", errors.Wrapf(lib.ErrRepoNotFound, "%s/%s", owner, repo)
	}
	repoRoot := lib.RepoDir(root, owner, repo)
	if !lib.IsRepository(repoRoot) {
		return "", errors.Wrapf(lib.ErrNotARepository, "%s/%s", owner, repo)
	}
	return repoRoot, nil
}
