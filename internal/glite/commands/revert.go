package commands

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// Revert produces a new commit whose snapshot is the reverted commit's
// parent's file list (empty when reverting a root commit), parented on the
// current branch head.
func Revert(root, actor, owner, repo, commitID string) (types.Commit, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return types.Commit{}, err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return types.Commit{}, err
	}
	if !lib.CommitExists(repoRoot, commitID) {
		return types.Commit{}, errors.Wrap(lib.ErrCommitNotFound, commitID)
	}
	original, err := lib.ReadCommit(repoRoot, commitID)
	if err != nil {
		return types.Commit{}, err
	}

	var files []types.IndexEntry
	if original.Parent != "" {
		parent, err := lib.ReadCommit(repoRoot, original.Parent)
		if err != nil {
			return types.Commit{}, err
		}
		files = parent.Files
	}

	current := lib.CurrentBranch(repoRoot)
	revert := types.Commit{
		Parent:    lib.BranchHead(repoRoot, current),
		Author:    actor,
		Timestamp: lib.Timestamp(),
		Branch:    current,
		Message:   "Revert: " + original.Message,
		Files:     files,
	}
	if err := lib.WriteCommit(repoRoot, &revert); err != nil {
		return types.Commit{}, err
	}
	if err := lib.WriteBranchHead(repoRoot, current, revert.ID); err != nil {
		return types.Commit{}, err
	}
	if err := lib.AppendLog(repoRoot, revert); err != nil {
		return types.Commit{}, err
	}
	log.WithFields(log.Fields{
		"repo":     lib.RepoKey(owner, repo),
		"reverted": commitID,
		"commit":   revert.ID,
	}).Info("reverted commit")
	return revert, nil
}
