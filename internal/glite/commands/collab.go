package commands

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

// AddCollaborator grants username write access to owner/repo. Owner-or-admin
// only. The owner is never added to their own collaborator set.
func AddCollaborator(root, actor, owner, repo, username string) error {
	if _, err := resolveRepo(root, owner, repo); err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(root, actor, owner, repo); err != nil {
		return err
	}
	exists, err := lib.UserExists(root, username)
	if err != nil {
		return err
	}
	if !exists {
		return errors.Wrap(lib.ErrUserNotFound, username)
	}
	if username == owner {
		return errors.Wrap(lib.ErrConflict, "owner already has access")
	}
	perms, err := lib.LoadPermissions(root)
	if err != nil {
		return err
	}
	perms.Collaborators(lib.RepoKey(owner, repo))[username] = true
	return lib.SavePermissions(root, perms)
}

// RemoveCollaborator revokes username's write access to owner/repo.
func RemoveCollaborator(root, actor, owner, repo, username string) error {
	if _, err := resolveRepo(root, owner, repo); err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(root, actor, owner, repo); err != nil {
		return err
	}
	perms, err := lib.LoadPermissions(root)
	if err != nil {
		return err
	}
	set := perms[lib.RepoKey(owner, repo)]
	if !set[username] {
		return errors.Wrapf(lib.ErrConflict, "%s is not a collaborator", username)
	}
	delete(set, username)
	return lib.SavePermissions(root, perms)
}

// ListCollaborators returns the collaborator set of owner/repo, sorted.
func ListCollaborators(root, actor, owner, repo string) ([]string, error) {
	if _, err := resolveRepo(root, owner, repo); err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(root, actor, owner, repo); err != nil {
		return nil, err
	}
	perms, err := lib.LoadPermissions(root)
	if err != nil {
		return nil, err
	}
	set := perms[lib.RepoKey(owner, repo)]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
