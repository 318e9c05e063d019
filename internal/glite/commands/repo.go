package commands

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// RepoSummary is one row of a repository listing.
type RepoSummary struct {
	Name       string
	Visibility string
}

// RepoInfo is the read-side view of a repository.
type RepoInfo struct {
	Config   types.RepoConfig
	Branches []types.Branch
	Tags     []string
}

// CreateRepo creates a repository skeleton under the actor's own namespace.
func CreateRepo(root, actor, name string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !lib.IsValidIdentifier(name) {
		return errors.Wrapf(lib.ErrInvalidIdentifier, "repository name %q", name)
	}
	if err := lib.EnsureUserFolder(root, actor); err != nil {
		return err
	}
	if err := lib.CreateRepoSkeleton(root, actor, name); err != nil {
		return err
	}
	log.WithFields(log.Fields{"owner": actor, "repo": name}).Info("created repository")
	return nil
}

// DeleteRepo removes a repository and its permission-map entry. Requires
// write access.
func DeleteRepo(root, actor, owner, repo string) error {
	if err := requireWrite(root, actor, owner, repo); err != nil {
		return err
	}
	if err := lib.DeleteRepo(root, owner, repo); err != nil {
		return err
	}
	perms, err := lib.LoadPermissions(root)
	if err != nil {
		return err
	}
	key := lib.RepoKey(owner, repo)
	if _, ok := perms[key]; ok {
		delete(perms, key)
		if err := lib.SavePermissions(root, perms); err != nil {
			return err
		}
	}
	log.WithFields(log.Fields{"owner": owner, "repo": repo}).Info("deleted repository")
	return nil
}

// ViewRepo returns config, branches, and tags for a repository the actor may
// read.
func ViewRepo(root, actor, owner, repo string) (RepoInfo, error) {
	repoRoot, err := resolveRepo(root, owner, repo)
	if err != nil {
		return RepoInfo{}, err
	}
	if err := requireRead(root, actor, owner, repo); err != nil {
		return RepoInfo{}, err
	}
	cfg, err := lib.ReadRepoConfig(repoRoot)
	if err != nil {
		return RepoInfo{}, err
	}
	branches, err := lib.ListBranches(repoRoot)
	if err != nil {
		return RepoInfo{}, err
	}
	tags, err := lib.ListTags(repoRoot)
	if err != nil {
		return RepoInfo{}, err
	}
	return RepoInfo{Config: cfg, Branches: branches, Tags: tags}, nil
}

// ListRepos returns the repositories of one user with their visibility.
func ListRepos(root, username string) ([]RepoSummary, error) {
	names, err := lib.ListUserRepos(root, username)
	if err != nil {
		return nil, err
	}
	summaries := make([]RepoSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, RepoSummary{
			Name:       name,
			Visibility: lib.GetVisibility(root, username, name),
		})
	}
	return summaries, nil
}

// ListAllRepos returns every (owner, repo) pair in the workspace.
func ListAllRepos(root string) ([]types.RepoRef, error) {
	return lib.ListAllRepos(root)
}

// SetRepoVisibility toggles a repository between public and private.
// Collaborators can push but may not change visibility; this is owner-or-admin.
func SetRepoVisibility(root, actor, owner, repo string, public bool) error {
	if _, err := resolveRepo(root, owner, repo); err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(root, actor, owner, repo); err != nil {
		return err
	}
	if err := lib.SetVisibility(root, owner, repo, public); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"owner":  owner,
		"repo":   repo,
		"public": public,
	}).Info("changed visibility")
	return nil
}
