package lib

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// CurrentBranch reads the branch name out of HEAD. A missing or malformed
// HEAD reads as the default branch.
func CurrentBranch(repoRoot string) string {
	content, err := os.ReadFile(HeadPath(repoRoot))
	if err != nil {
		return DefaultBranch
	}
	line := strings.TrimSpace(string(content))
	if !strings.HasPrefix(line, "ref:") {
		return DefaultBranch
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "ref:"))
}

// WriteHead points HEAD at a branch. The on-disk form is exactly
// "ref: <branch>\n".
func WriteHead(repoRoot, branch string) error {
	if err := os.WriteFile(HeadPath(repoRoot), []byte("ref: "+branch+"\n"), 0644); err != nil {
		return errors.Wrap(err, "writing HEAD")
	}
	return nil
}

// BranchExists reports whether a ref file exists for branch.
func BranchExists(repoRoot, branch string) bool {
	_, err := os.Stat(BranchRefPath(repoRoot, branch))
	return err == nil
}

// BranchHead returns the commit id a branch points at, or an empty string for
// a branch with no commits (including a missing ref file).
func BranchHead(repoRoot, branch string) string {
	content, err := os.ReadFile(BranchRefPath(repoRoot, branch))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}

// WriteBranchHead updates a branch's ref file to a commit id.
func WriteBranchHead(repoRoot, branch, commitID string) error {
	if err := os.WriteFile(BranchRefPath(repoRoot, branch), []byte(commitID+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "updating branch %s", branch)
	}
	return nil
}

// ListBranches returns every branch with its head, sorted by name.
func ListBranches(repoRoot string) ([]types.Branch, error) {
	entries, err := os.ReadDir(HeadsDir(repoRoot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "listing branches")
	}
	var branches []types.Branch
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		branches = append(branches, types.Branch{
			Name: entry.Name(),
			Head: BranchHead(repoRoot, entry.Name()),
		})
	}
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// RenameBranchRef renames a branch's ref file.
func RenameBranchRef(repoRoot, oldName, newName string) error {
	if err := os.Rename(BranchRefPath(repoRoot, oldName), BranchRefPath(repoRoot, newName)); err != nil {
		return errors.Wrapf(err, "renaming branch %s", oldName)
	}
	return nil
}

// DeleteBranchRef removes a branch's ref file.
func DeleteBranchRef(repoRoot, branch string) error {
	if err := os.Remove(BranchRefPath(repoRoot, branch)); err != nil {
		return errors.Wrapf(err, "deleting branch %s", branch)
	}
	return nil
}

// TagExists reports whether a ref file exists for tag.
func TagExists(repoRoot, tag string) bool {
	_, err := os.Stat(TagRefPath(repoRoot, tag))
	return err == nil
}

// WriteTag freezes a commit id under refs/tags/<tag>.
func WriteTag(repoRoot, tag, commitID string) error {
	if err := os.MkdirAll(TagsDir(repoRoot), 0755); err != nil {
		return errors.Wrap(err, "creating tags directory")
	}
	if err := os.WriteFile(TagRefPath(repoRoot, tag), []byte(commitID+"\n"), 0644); err != nil {
		return errors.Wrapf(err, "writing tag %s", tag)
	}
	return nil
}

// ReadTag returns the commit id a tag points at.
func ReadTag(repoRoot, tag string) (string, error) {
	content, err := os.ReadFile(TagRefPath(repoRoot, tag))
	if err != nil {
		return "", errors.Wrapf(err, "reading tag %s", tag)
	}
	return strings.TrimSpace(string(content)), nil
}

// ListTags returns the tag names of a repository. Order follows the directory
// listing; callers that need a fixed order sort.
func ListTags(repoRoot string) ([]string, error) {
	entries, err := os.ReadDir(TagsDir(repoRoot))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "listing tags")
	}
	var tags []string
	for _, entry := range entries {
		if !entry.IsDir() {
			tags = append(tags, entry.Name())
		}
	}
	return tags, nil
}
