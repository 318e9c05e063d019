package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerrexayers/glite-go/internal/glite/commands"
	"github.com/gingerrexayers/glite-go/internal/glite/lib"
)

func TestPushPullRoundTrip(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, commands.CreateRepo(root, "alice", "proj"))
	stageAndCommit(t, root, "alice", "alice", "proj", "a.txt", "hi\n", "c1")

	// Leave something staged so the index has bytes worth comparing.
	writeWorkspaceFile(t, root, "alice", "proj", "b.txt", "staged\n")
	_, err := commands.AddFile(root, "alice", "alice", "proj", "b.txt")
	require.NoError(t, err)

	repoRoot := repoRootOf(root, "alice", "proj")
	indexBefore := readFileString(t, lib.IndexPath(repoRoot))

	require.NoError(t, commands.Push(root, "alice", "alice", "proj"))

	// Damage the local repo, then restore it from the mirror.
	require.NoError(t, os.Remove(lib.IndexPath(repoRoot)))
	require.NoError(t, commands.Pull(root, "alice", "alice", "proj"))

	assert.Equal(t, indexBefore, readFileString(t, lib.IndexPath(repoRoot)))
	assert.Equal(t, "hi\n", readFileString(t, filepath.Join(lib.WorkspaceDir(repoRoot), "a.txt")))

	// Objects and refs survive the round trip.
	head := lib.BranchHead(repoRoot, "main")
	assert.NotEmpty(t, head)
	assert.True(t, lib.CommitExists(repoRoot, head))
}

func TestPullWithoutMirror(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, commands.CreateRepo(root, "alice", "proj"))

	err := commands.Pull(root, "alice", "alice", "proj")
	assert.ErrorIs(t, err, lib.ErrRepoNotFound)
}

func TestPushReplacesMirror(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, commands.CreateRepo(root, "alice", "proj"))
	stageAndCommit(t, root, "alice", "alice", "proj", "a.txt", "v1\n", "c1")
	require.NoError(t, commands.Push(root, "alice", "alice", "proj"))

	// Plant a stray file in the mirror; the next push wipes it.
	remoteRoot := lib.RemoteDir(root, "alice", "proj")
	stray := filepath.Join(lib.WorkspaceDir(remoteRoot), "stray.txt")
	require.NoError(t, os.WriteFile(stray, []byte("stale"), 0644))

	require.NoError(t, commands.Push(root, "alice", "alice", "proj"))
	_, err := os.Stat(stray)
	assert.True(t, os.IsNotExist(err))
}

func TestFork(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, commands.CreateRepo(root, "alice", "proj"))
	c1 := stageAndCommit(t, root, "alice", "alice", "proj", "a.txt", "hi\n", "c1")

	// Private repo, no access: fork denied.
	_, err := commands.Fork(root, "bob", "alice", "proj")
	assert.ErrorIs(t, err, lib.ErrPermissionDenied)

	require.NoError(t, commands.SetRepoVisibility(root, "alice", "alice", "proj", true))
	name, err := commands.Fork(root, "bob", "alice", "proj")
	require.NoError(t, err)
	assert.Equal(t, "proj-fork", name)

	forkRoot := repoRootOf(root, "bob", "proj-fork")
	assert.Equal(t, c1, lib.BranchHead(forkRoot, "main"))
	assert.True(t, lib.CommitExists(forkRoot, c1))
	assert.Equal(t, "hi\n", readFileString(t, filepath.Join(lib.WorkspaceDir(forkRoot), "a.txt")))

	// The fork's config is relabeled for its new home.
	cfg, err := lib.ReadRepoConfig(forkRoot)
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.Owner)
	assert.Equal(t, "proj-fork", cfg.Name)

	// A second fork picks the next free name.
	name2, err := commands.Fork(root, "bob", "alice", "proj")
	require.NoError(t, err)
	assert.Equal(t, "proj-fork1", name2)
}

func TestTransfer(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, commands.CreateRepo(root, "alice", "proj"))
	_, err := commands.Register(root, stubCreds{}, "carol", "secret3")
	require.NoError(t, err)
	require.NoError(t, commands.AddCollaborator(root, "alice", "alice", "proj", "bob"))
	require.NoError(t, commands.AddCollaborator(root, "alice", "alice", "proj", "carol"))
	c1 := stageAndCommit(t, root, "alice", "alice", "proj", "a.txt", "hi\n", "c1")

	// Collaborators cannot transfer.
	err = commands.Transfer(root, "bob", "alice", "proj", "bob")
	assert.ErrorIs(t, err, lib.ErrPermissionDenied)

	err = commands.Transfer(root, "alice", "alice", "proj", "ghost")
	assert.ErrorIs(t, err, lib.ErrUserNotFound)

	require.NoError(t, commands.Transfer(root, "alice", "alice", "proj", "bob"))
	assert.False(t, lib.RepoExists(root, "alice", "proj"))
	assert.True(t, lib.RepoExists(root, "bob", "proj"))
	assert.True(t, lib.CommitExists(repoRootOf(root, "bob", "proj"), c1))

	// The permission-map key moved with the repository, and the new owner
	// was dropped from the collaborator set.
	perms, err := lib.LoadPermissions(root)
	require.NoError(t, err)
	_, ok := perms[lib.RepoKey("alice", "proj")]
	assert.False(t, ok)
	assert.False(t, perms[lib.RepoKey("bob", "proj")]["bob"])
	assert.True(t, perms[lib.RepoKey("bob", "proj")]["carol"])
}

func TestTransferOntoExistingTarget(t *testing.T) {
	root := newTestRoot(t)
	require.NoError(t, commands.CreateRepo(root, "alice", "proj"))
	require.NoError(t, commands.CreateRepo(root, "bob", "proj"))

	err := commands.Transfer(root, "alice", "alice", "proj", "bob")
	assert.ErrorIs(t, err, lib.ErrConflict)
}
