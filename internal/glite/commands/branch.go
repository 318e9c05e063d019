package commands

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// MergeAuthor is the author recorded on merge commits.
const MergeAuthor = "merge"

// CreateBranch creates a new branch rooted at the current branch's head. The
// head may be empty, leaving the branch rooted at nothing until its first
// commit.
func CreateBranch(root, actor, owner, repo, name string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	if !lib.IsValidIdentifier(name) {
		return errors.Wrapf(lib.ErrInvalidIdentifier, "branch name %q", name)
	}
	if lib.BranchExists(repoRoot, name) {
		return errors.Wrap(lib.ErrBranchExists, name)
	}
	head := lib.BranchHead(repoRoot, lib.CurrentBranch(repoRoot))
	return lib.WriteBranchHead(repoRoot, name, head)
}

// SwitchBranch rewrites HEAD to name. The working tree is deliberately left
// untouched: this engine does not synchronize the tree on checkout.
func SwitchBranch(root, actor, owner, repo, name string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	if !lib.BranchExists(repoRoot, name) {
		return errors.Wrap(lib.ErrBranchNotFound, name)
	}
	return lib.WriteHead(repoRoot, name)
}

// ListBranches returns every branch with its head, sorted by name.
func ListBranches(root, actor, owner, repo string) ([]types.Branch, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return nil, err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return nil, err
	}
	return lib.ListBranches(repoRoot)
}

// CurrentBranch returns the branch HEAD names.
func CurrentBranch(root, actor, owner, repo string) (string, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return "", err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return "", err
	}
	return lib.CurrentBranch(repoRoot), nil
}

// RenameBranch renames a branch's ref file and rewrites HEAD if it pointed at
// the old name.
func RenameBranch(root, actor, owner, repo, oldName, newName string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	if !lib.IsValidIdentifier(newName) {
		return errors.Wrapf(lib.ErrInvalidIdentifier, "branch name %q", newName)
	}
	if !lib.BranchExists(repoRoot, oldName) {
		return errors.Wrap(lib.ErrBranchNotFound, oldName)
	}
	if lib.BranchExists(repoRoot, newName) {
		return errors.Wrap(lib.ErrBranchExists, newName)
	}
	if err := lib.RenameBranchRef(repoRoot, oldName, newName); err != nil {
		return err
	}
	if lib.CurrentBranch(repoRoot) == oldName {
		return lib.WriteHead(repoRoot, newName)
	}
	return nil
}

// DeleteBranch removes a branch. The current branch cannot be deleted.
func DeleteBranch(root, actor, owner, repo, name string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	if !lib.BranchExists(repoRoot, name) {
		return errors.Wrap(lib.ErrBranchNotFound, name)
	}
	if lib.CurrentBranch(repoRoot) == name {
		return errors.Wrap(lib.ErrConflict, "cannot delete the current branch")
	}
	return lib.DeleteBranchRef(repoRoot, name)
}

// MergeBranch merges other into the current branch by taking other's file
// list wholesale (last-writer-wins, no three-way reconciliation). The result
// is a regular commit record whose parent is the current head.
func MergeBranch(root, actor, owner, repo, other string) (types.Commit, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return types.Commit{}, err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return types.Commit{}, err
	}
	current := lib.CurrentBranch(repoRoot)
	if other == current {
		return types.Commit{}, errors.Wrap(lib.ErrConflict, "cannot merge a branch into itself")
	}
	if !lib.BranchExists(repoRoot, other) {
		return types.Commit{}, errors.Wrap(lib.ErrBranchNotFound, other)
	}
	otherHead := lib.BranchHead(repoRoot, other)
	if otherHead == "" {
		return types.Commit{}, errors.Wrapf(lib.ErrConflict, "branch %s has no commits", other)
	}
	otherCommit, err := lib.ReadCommit(repoRoot, otherHead)
	if err != nil {
		return types.Commit{}, err
	}

	merge := types.Commit{
		Parent:    lib.BranchHead(repoRoot, current),
		Author:    MergeAuthor,
		Timestamp: lib.Timestamp(),
		Branch:    current,
		Message:   fmt.Sprintf("Merge branch '%s' into '%s'", other, current),
		Files:     otherCommit.Files,
	}
	if err := lib.WriteCommit(repoRoot, &merge); err != nil {
		return types.Commit{}, err
	}
	if err := lib.WriteBranchHead(repoRoot, current, merge.ID); err != nil {
		return types.Commit{}, err
	}
	if err := lib.AppendLog(repoRoot, merge); err != nil {
		return types.Commit{}, err
	}
	log.WithFields(log.Fields{
		"repo":   lib.RepoKey(owner, repo),
		"from":   other,
		"into":   current,
		"commit": merge.ID,
	}).Info("merged branch")
	return merge, nil
}

// RebaseBranch force-resets the current branch's head to other's head. No new
// commit is created and the current branch's unique history becomes
// unreachable from its ref.
func RebaseBranch(root, actor, owner, repo, other string) error {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	current := lib.CurrentBranch(repoRoot)
	if other == current {
		return errors.Wrap(lib.ErrConflict, "cannot rebase a branch onto itself")
	}
	if !lib.BranchExists(repoRoot, other) {
		return errors.Wrap(lib.ErrBranchNotFound, other)
	}
	otherHead := lib.BranchHead(repoRoot, other)
	if otherHead == "" {
		return errors.Wrapf(lib.ErrConflict, "branch %s has no commits", other)
	}
	return lib.WriteBranchHead(repoRoot, current, otherHead)
}
