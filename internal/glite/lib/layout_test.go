package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

func TestEnsureRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "storage")
	require.NoError(t, EnsureRoot(root))

	for _, path := range []string{
		filepath.Join(root, RemotesDirName),
		UsersPath(root),
		PermissionsPath(root),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}

	// Idempotent.
	require.NoError(t, EnsureRoot(root))
}

func TestCreateRepoSkeleton(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateRepoSkeleton(root, "alice", "proj"))
	repoRoot := RepoDir(root, "alice", "proj")

	// Full skeleton present.
	for _, dir := range []string{ObjectsDir(repoRoot), HeadsDir(repoRoot), TagsDir(repoRoot), WorkspaceDir(repoRoot)} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
	}

	head, err := os.ReadFile(HeadPath(repoRoot))
	require.NoError(t, err)
	assert.Equal(t, "ref: main\n", string(head))

	for _, path := range []string{IndexPath(repoRoot), LogPath(repoRoot), BranchRefPath(repoRoot, "main")} {
		content, err := os.ReadFile(path)
		require.NoError(t, err, path)
		assert.Empty(t, content, path)
	}

	cfg, err := ReadRepoConfig(repoRoot)
	require.NoError(t, err)
	assert.Equal(t, "proj", cfg.Name)
	assert.Equal(t, "alice", cfg.Owner)
	assert.Equal(t, VisibilityPrivate, cfg.Visibility)
	assert.NotEmpty(t, cfg.Created)

	assert.True(t, IsRepository(repoRoot))
	assert.True(t, RepoExists(root, "alice", "proj"))

	err = CreateRepoSkeleton(root, "alice", "proj")
	assert.ErrorIs(t, err, ErrRepoExists)
}

func TestListUserRepos(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateRepoSkeleton(root, "alice", "zeta"))
	require.NoError(t, CreateRepoSkeleton(root, "alice", "alpha"))

	repos, err := ListUserRepos(root, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, repos)

	repos, err = ListUserRepos(root, "nobody")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestListAllReposSkipsReserved(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateRepoSkeleton(root, "bob", "b"))
	require.NoError(t, CreateRepoSkeleton(root, "alice", "a"))
	// A mirror under _remotes must never show up as a user's repository.
	require.NoError(t, os.MkdirAll(filepath.Join(root, RemotesDirName, "alice", "a"), 0755))

	repos, err := ListAllRepos(root)
	require.NoError(t, err)
	assert.Equal(t, []types.RepoRef{
		{Owner: "alice", Name: "a"},
		{Owner: "bob", Name: "b"},
	}, repos)
}

func TestDeleteRepo(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, CreateRepoSkeleton(root, "alice", "proj"))
	require.NoError(t, DeleteRepo(root, "alice", "proj"))
	assert.False(t, RepoExists(root, "alice", "proj"))

	err := DeleteRepo(root, "alice", "proj")
	assert.ErrorIs(t, err, ErrRepoNotFound)
}

func TestIdentifierRules(t *testing.T) {
	assert.True(t, IsValidIdentifier("proj-1.2_x"))
	assert.False(t, IsValidIdentifier(""))
	assert.False(t, IsValidIdentifier("has space"))
	assert.False(t, IsValidIdentifier("slash/y"))

	assert.True(t, IsValidUsername("alice"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("this-name-is-way-too-long-to-be-a-username"))
}
