package lib

import (
	"os"
	"path/filepath"
	"regexp"
)

// --- Constants ---

// GliteDirName is the name of the metadata directory inside every repository.
const GliteDirName = ".glite"

// WorkspaceDirName is the user-visible working tree inside a repository.
const WorkspaceDirName = "workspace"

// ObjectsDirName is the flat directory of content-addressed objects.
const ObjectsDirName = "objects"

// RemotesDirName is the reserved top-level directory holding mirror copies.
// Any top-level name beginning with '_' is reserved and never a user.
const RemotesDirName = "_remotes"

// UsersFileName is the TSV user registry at the workspace root.
const UsersFileName = "users.tsv"

// PermissionsFileName is the TSV collaborator map at the workspace root.
const PermissionsFileName = "permissions.tsv"

// IgnoreFileName is the per-repository ignore pattern file.
const IgnoreFileName = ".gliteignore"

// DefaultBranch is the branch every new repository starts on.
const DefaultBranch = "main"

// --- Path helpers ---

// RepoDir returns the directory of a repository under the workspace root.
func RepoDir(root, owner, repo string) string {
	return filepath.Join(root, owner, repo)
}

// RemoteDir returns the mirror directory for a repository.
func RemoteDir(root, owner, repo string) string {
	return filepath.Join(root, RemotesDirName, owner, repo)
}

// GliteDir returns the metadata directory of a repository.
func GliteDir(repoRoot string) string {
	return filepath.Join(repoRoot, GliteDirName)
}

// WorkspaceDir returns the working tree of a repository.
func WorkspaceDir(repoRoot string) string {
	return filepath.Join(repoRoot, WorkspaceDirName)
}

// ObjectsDir returns the object directory of a repository.
func ObjectsDir(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), ObjectsDirName)
}

// ObjectPath returns the path of a single object by hash.
func ObjectPath(repoRoot, hash string) string {
	return filepath.Join(ObjectsDir(repoRoot), hash)
}

// HeadPath returns the HEAD file of a repository.
func HeadPath(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), "HEAD")
}

// ConfigPath returns the config file of a repository.
func ConfigPath(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), "config")
}

// IndexPath returns the staged-file index of a repository.
func IndexPath(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), "index")
}

// LogPath returns the append-only commit log of a repository.
func LogPath(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), "log")
}

// HeadsDir returns the branch refs directory of a repository.
func HeadsDir(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), "refs", "heads")
}

// BranchRefPath returns the head file of one branch.
func BranchRefPath(repoRoot, branch string) string {
	return filepath.Join(HeadsDir(repoRoot), branch)
}

// TagsDir returns the tag refs directory of a repository.
func TagsDir(repoRoot string) string {
	return filepath.Join(GliteDir(repoRoot), "refs", "tags")
}

// TagRefPath returns the ref file of one tag.
func TagRefPath(repoRoot, tag string) string {
	return filepath.Join(TagsDir(repoRoot), tag)
}

// IgnorePath returns the .gliteignore file of a repository.
func IgnorePath(repoRoot string) string {
	return filepath.Join(repoRoot, IgnoreFileName)
}

// UsersPath returns the user registry file under the workspace root.
func UsersPath(root string) string {
	return filepath.Join(root, UsersFileName)
}

// PermissionsPath returns the permission map file under the workspace root.
func PermissionsPath(root string) string {
	return filepath.Join(root, PermissionsFileName)
}

// RepoKey builds the "<owner>/<repo>" key used by the permission map.
func RepoKey(owner, repo string) string {
	return owner + "/" + repo
}

// IsRepository reports whether repoRoot carries the .glite skeleton.
func IsRepository(repoRoot string) bool {
	info, err := os.Stat(GliteDir(repoRoot))
	return err == nil && info.IsDir()
}

// --- Identifier rules ---

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// IsValidIdentifier reports whether name is acceptable for repositories,
// branches and tags.
func IsValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// IsValidUsername applies the identifier pattern plus the 3-32 length rule.
func IsValidUsername(name string) bool {
	return len(name) >= 3 && len(name) <= 32 && identifierPattern.MatchString(name)
}
