package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIgnored(t *testing.T) {
	repoRoot := testRepoRoot(t)

	testCases := []struct {
		name          string
		ignoreContent string
		path          string
		ignored       bool
	}{
		{
			name:          "no ignore file",
			ignoreContent: "",
			path:          "a.txt",
			ignored:       false,
		},
		{
			name:          "exact file match",
			ignoreContent: "secret.txt\n",
			path:          "secret.txt",
			ignored:       true,
		},
		{
			name:          "glob pattern",
			ignoreContent: "*.log\n",
			path:          "build/system.log",
			ignored:       true,
		},
		{
			name:          "directory pattern",
			ignoreContent: "build/\n",
			path:          "build/out.bin",
			ignored:       true,
		},
		{
			name:          "comments and blanks are skipped",
			ignoreContent: "# a comment\n\n*.tmp\n",
			path:          "scratch.tmp",
			ignored:       true,
		},
		{
			name:          "non-matching path",
			ignoreContent: "*.log\n",
			path:          "main.go",
			ignored:       false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.ignoreContent == "" {
				os.Remove(IgnorePath(repoRoot))
			} else {
				require.NoError(t, os.WriteFile(IgnorePath(repoRoot), []byte(tc.ignoreContent), 0644))
			}
			assert.Equal(t, tc.ignored, IsIgnored(repoRoot, tc.path))
		})
	}
}

func TestAddIgnorePatternAppends(t *testing.T) {
	repoRoot := testRepoRoot(t)

	require.NoError(t, AddIgnorePattern(repoRoot, "*.log"))
	require.NoError(t, AddIgnorePattern(repoRoot, "build/"))

	content, err := os.ReadFile(IgnorePath(repoRoot))
	require.NoError(t, err)
	assert.Equal(t, "*.log\nbuild/\n", string(content))
}
