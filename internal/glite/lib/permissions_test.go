package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

func TestPermissionsRoundTrip(t *testing.T) {
	root := t.TempDir()

	perms := types.PermissionMap{
		"alice/proj":  {"bob": true, "carol": true},
		"carol/other": {"alice": true},
	}
	require.NoError(t, SavePermissions(root, perms))

	got, err := LoadPermissions(root)
	require.NoError(t, err)
	assert.Equal(t, perms, got)
}

func TestSavePermissionsDeterministic(t *testing.T) {
	root := t.TempDir()

	perms := types.PermissionMap{
		"b/repo": {"zed": true, "amy": true},
		"a/repo": {"bob": true},
	}
	require.NoError(t, SavePermissions(root, perms))

	content, err := os.ReadFile(PermissionsPath(root))
	require.NoError(t, err)
	// Keys and collaborator names come out sorted.
	assert.Equal(t, "a/repo\tbob\nb/repo\tamy,zed\n", string(content))
}

func TestSavePermissionsOmitsEmptySets(t *testing.T) {
	root := t.TempDir()

	perms := types.PermissionMap{
		"alice/proj":  {},
		"alice/other": {"bob": true},
	}
	require.NoError(t, SavePermissions(root, perms))

	content, err := os.ReadFile(PermissionsPath(root))
	require.NoError(t, err)
	assert.Equal(t, "alice/other\tbob\n", string(content))
}

func TestLoadPermissionsTrailingTab(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(PermissionsPath(root), []byte("alice/proj\t\nbob/thing\tcarol,dave\n"), 0644))

	perms, err := LoadPermissions(root)
	require.NoError(t, err)
	assert.Empty(t, perms["alice/proj"])
	assert.Equal(t, map[string]bool{"carol": true, "dave": true}, perms["bob/thing"])
}

func TestLoadPermissionsMissingFile(t *testing.T) {
	perms, err := LoadPermissions(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, perms)
}
