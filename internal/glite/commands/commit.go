package commands

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// Commit turns the staged index into a new commit on the current branch.
// The write order is a contract: the object file must exist before the ref
// moves, so a crash in between leaves an unreachable object rather than a
// dangling ref. The index is cleared after the ref update; the log line is
// appended last.
func Commit(root, actor, owner, repo, message string) (types.Commit, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return types.Commit{}, err
	}
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return types.Commit{}, err
	}
	entries, err := lib.ReadIndex(repoRoot)
	if err != nil {
		return types.Commit{}, err
	}
	if len(entries) == 0 {
		return types.Commit{}, errors.Wrap(lib.ErrFileNotStaged, "nothing to commit (index empty)")
	}

	branch := lib.CurrentBranch(repoRoot)
	commit := types.Commit{
		Parent:    lib.BranchHead(repoRoot, branch),
		Author:    actor,
		Timestamp: lib.Timestamp(),
		Branch:    branch,
		Message:   message,
		Files:     entries,
	}
	if err := lib.WriteCommit(repoRoot, &commit); err != nil {
		return types.Commit{}, err
	}
	if err := lib.WriteBranchHead(repoRoot, branch, commit.ID); err != nil {
		return types.Commit{}, err
	}
	if err := lib.WriteIndex(repoRoot, nil); err != nil {
		return types.Commit{}, err
	}
	if err := lib.AppendLog(repoRoot, commit); err != nil {
		return types.Commit{}, err
	}
	log.WithFields(log.Fields{
		"repo":   lib.RepoKey(owner, repo),
		"branch": branch,
		"commit": commit.ID,
		"files":  len(entries),
	}).Info("committed")
	return commit, nil
}

// GetCommit returns one commit record by id.
func GetCommit(root, actor, owner, repo, commitID string) (types.Commit, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return types.Commit{}, err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return types.Commit{}, err
	}
	if !lib.CommitExists(repoRoot, commitID) {
		return types.Commit{}, errors.Wrap(lib.ErrCommitNotFound, commitID)
	}
	return lib.ReadCommit(repoRoot, commitID)
}
