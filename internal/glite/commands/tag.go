package commands

import (
	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

// CreateTag freezes the current branch head under refs/tags/<name>.
func CreateTag(root, actor, owner, repo, name string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	if !lib.IsValidIdentifier(name) {
		return errors.Wrapf(lib.ErrInvalidIdentifier, "tag name %q", name)
	}
	if lib.TagExists(repoRoot, name) {
		return errors.Wrap(lib.ErrTagExists, name)
	}
	head := lib.BranchHead(repoRoot, lib.CurrentBranch(repoRoot))
	if head == "" {
		return errors.Wrap(lib.ErrConflict, "no commits to tag")
	}
	return lib.WriteTag(repoRoot, name, head)
}

// ListTags returns the repository's tag names.
func ListTags(root, actor, owner, repo string) ([]string, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return nil, err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return nil, err
	}
	return lib.ListTags(repoRoot)
}
