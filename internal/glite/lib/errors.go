// Package lib contains the core, reusable services for the glite engine:
// hashing, the on-disk layout, the user registry and permission map, the
// content-addressed object store, the index, refs, and the commit codec.
package lib

import "github.com/pkg/errors"

// The closed error taxonomy of the engine. Operations wrap these sentinels
// with context (errors.Wrap), so callers classify with errors.Is and still
// see the underlying cause in the message.
var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrNotARepository    = errors.New("not a glite repository")
	ErrRepoNotFound      = errors.New("repository not found")
	ErrRepoExists        = errors.New("repository already exists")
	ErrBranchExists      = errors.New("branch already exists")
	ErrTagExists         = errors.New("tag already exists")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrCommitNotFound    = errors.New("commit not found")
	ErrFileNotStaged     = errors.New("file not staged")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("user already exists")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrConflict          = errors.New("conflict")
)
