package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

func testRepoRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, CreateRepoSkeleton(root, "alice", "proj"))
	return RepoDir(root, "alice", "proj")
}

func TestCommitBodyLayout(t *testing.T) {
	c := types.Commit{
		Author:    "alice",
		Timestamp: "2026-08-05T10:00:00",
		Branch:    "main",
		Message:   "c1",
		Files: []types.IndexEntry{
			{Path: "a.txt", BlobID: "98ea6e4f216f2fb4b69fff9b3a44842c38686ca685f3f55dc48c5d3fb1107be4"},
		},
	}
	want := "author=alice\n" +
		"timestamp=2026-08-05T10:00:00\n" +
		"branch=main\n" +
		"parent=null\n" +
		"message=c1\n" +
		"files:\n" +
		"a.txt\t98ea6e4f216f2fb4b69fff9b3a44842c38686ca685f3f55dc48c5d3fb1107be4\n"
	assert.Equal(t, want, string(CommitBody(c)))

	c.Parent = "deadbeef"
	assert.Contains(t, string(CommitBody(c)), "parent=deadbeef\n")
}

func TestWriteCommitIDIntegrity(t *testing.T) {
	repoRoot := testRepoRoot(t)

	c := types.Commit{
		Author:    "alice",
		Timestamp: Timestamp(),
		Branch:    "main",
		Message:   "first",
		Files:     []types.IndexEntry{{Path: "a.txt", BlobID: HashBytes([]byte("hi\n"))}},
	}
	require.NoError(t, WriteCommit(repoRoot, &c))

	// The stored id must be the hash of the body bytes.
	assert.Equal(t, HashBytes(CommitBody(c)), c.ID)

	data, err := os.ReadFile(ObjectPath(repoRoot, c.ID))
	require.NoError(t, err)
	assert.Equal(t, "id="+c.ID+"\n"+string(CommitBody(c)), string(data))
}

func TestReadCommitRoundTrip(t *testing.T) {
	repoRoot := testRepoRoot(t)

	c := types.Commit{
		Author:    "alice",
		Timestamp: "2026-08-05T10:00:00",
		Branch:    "main",
		Message:   "round trip",
		Files: []types.IndexEntry{
			{Path: "a.txt", BlobID: HashBytes([]byte("a"))},
			{Path: "dir/b.txt", BlobID: HashBytes([]byte("b"))},
		},
	}
	require.NoError(t, WriteCommit(repoRoot, &c))

	got, err := ReadCommit(repoRoot, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestReadCommitMissing(t *testing.T) {
	repoRoot := testRepoRoot(t)
	_, err := ReadCommit(repoRoot, "0000000000000000000000000000000000000000000000000000000000000000")
	assert.ErrorIs(t, err, ErrCommitNotFound)
}

func TestParseCommitNullParent(t *testing.T) {
	record := "id=abc\nauthor=alice\ntimestamp=2026-08-05T10:00:00\nbranch=main\nparent=null\nmessage=root\nfiles:\n"
	c := ParseCommit([]byte(record))
	assert.Equal(t, "abc", c.ID)
	assert.Empty(t, c.Parent)
	assert.Empty(t, c.Files)
}

func TestAppendLogFormat(t *testing.T) {
	repoRoot := testRepoRoot(t)

	c := types.Commit{ID: "abc", Branch: "main", Timestamp: "2026-08-05T10:00:00", Message: "c1"}
	require.NoError(t, AppendLog(repoRoot, c))
	c2 := types.Commit{ID: "def", Branch: "main", Timestamp: "2026-08-05T10:00:01", Message: "c2"}
	require.NoError(t, AppendLog(repoRoot, c2))

	content, err := os.ReadFile(LogPath(repoRoot))
	require.NoError(t, err)
	assert.Equal(t,
		"abc\tmain\t2026-08-05T10:00:00\tc1\n"+
			"def\tmain\t2026-08-05T10:00:01\tc2\n",
		string(content))
}
