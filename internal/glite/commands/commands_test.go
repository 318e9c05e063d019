// The _test suffix creates an external test package, so these tests exercise
// the service exactly the way the CLI does.
package commands_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

// stubCreds is a deterministic Credentials implementation so tests never pay
// for real key stretching.
type stubCreds struct{}

func (stubCreds) Make(plaintext string) (string, error) { return "plain:" + plaintext, nil }
func (stubCreds) Verify(stored, candidate string) bool  { return stored == "plain:"+candidate }

// newTestRoot creates a workspace root with alice (admin, registered first)
// and bob already present.
func newTestRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "storage")
	_, err := commands.Register(root, stubCreds{}, "alice", "secret1")
	require.NoError(t, err)
	_, err = commands.Register(root, stubCreds{}, "bob", "secret2")
	require.NoError(t, err)
	return root
}

// writeWorkspaceFile drops a file into a repository's working tree.
func writeWorkspaceFile(t *testing.T, root, owner, repo, relPath, content string) {
	t.Helper()
	path := filepath.Join(lib.WorkspaceDir(lib.RepoDir(root, owner, repo)), filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// stageAndCommit is the common write path: stage one file, commit it.
func stageAndCommit(t *testing.T, root, actor, owner, repo, relPath, content, message string) string {
	t.Helper()
	writeWorkspaceFile(t, root, owner, repo, relPath, content)
	_, err := commands.AddFile(root, actor, owner, repo, relPath)
	require.NoError(t, err)
	commit, err := commands.Commit(root, actor, owner, repo, message)
	require.NoError(t, err)
	return commit.ID
}

func readFileString(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func repoRootOf(root, owner, repo string) string {
	return lib.RepoDir(root, owner, repo)
}

func hasLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if l == line {
			return true
		}
	}
	return false
}
