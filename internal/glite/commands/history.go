package commands

import (
	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// History walks the parent chain from a branch head, yielding up to limit
// records, newest first. The walk terminates gracefully at an empty parent or
// at an id whose object is missing.
func History(root, actor, owner, repo, branch string, limit int) ([]types.Commit, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return nil, err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return nil, err
	}
	var commits []types.Commit
	current := lib.BranchHead(repoRoot, branch)
	for current != "" && len(commits) < limit {
		if !lib.CommitExists(repoRoot, current) {
			break
		}
		commit, err := lib.ReadCommit(repoRoot, current)
		if err != nil {
			break
		}
		commits = append(commits, commit)
		current = commit.Parent
	}
	return commits, nil
}
