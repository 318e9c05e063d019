package commands

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/gingerrexayers/glite-go/internal/glite/lib"
	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// Register creates a new user. The first user ever registered becomes admin;
// everyone after that defaults to the user role.
func Register(root string, creds lib.Credentials, username, password string) (types.User, error) {
	if !lib.IsValidUsername(username) {
		return types.User{}, errors.Wrapf(lib.ErrInvalidIdentifier, "username %q", username)
	}
	if err := lib.EnsureRoot(root); err != nil {
		return types.User{}, err
	}
	users, err := lib.LoadUsers(root)
	if err != nil {
		return types.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return types.User{}, errors.Wrap(lib.ErrUserExists, username)
		}
	}
	hash, err := creds.Make(password)
	if err != nil {
		return types.User{}, err
	}
	role := types.RoleUser
	if len(users) == 0 {
		role = types.RoleAdmin
	}
	user := types.User{Username: username, PasswordHash: hash, Role: role}
	if err := lib.SaveUsers(root, append(users, user)); err != nil {
		return types.User{}, err
	}
	if err := lib.EnsureUserFolder(root, username); err != nil {
		return types.User{}, err
	}
	log.WithFields(log.Fields{"user": username, "role": role}).Info("registered user")
	return user, nil
}

// Login verifies a candidate password against the stored verifier and returns
// the matching user.
func Login(root string, creds lib.Credentials, username, password string) (types.User, error) {
	user, err := lib.FindUser(root, username)
	if err != nil {
		return types.User{}, err
	}
	if !creds.Verify(user.PasswordHash, password) {
		return types.User{}, errors.Wrap(lib.ErrPermissionDenied, "invalid credentials")
	}
	return *user, nil
}

// ListUsers returns the registry contents.
func ListUsers(root string) ([]types.User, error) {
	return lib.LoadUsers(root)
}

// MakeAdmin promotes target to the admin role. Admin-only.
func MakeAdmin(root, actor, target string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	admin, err := IsAdmin(root, actor)
	if err != nil {
		return err
	}
	if !admin {
		return errors.Wrap(lib.ErrPermissionDenied, "only admins may promote users")
	}
	return setRole(root, target, types.RoleAdmin)
}

// RemoveAdmin demotes target to the user role. Admin-only, and demoting
// yourself is forbidden so at least one admin always remains.
func RemoveAdmin(root, actor, target string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	admin, err := IsAdmin(root, actor)
	if err != nil {
		return err
	}
	if !admin {
		return errors.Wrap(lib.ErrPermissionDenied, "only admins may demote users")
	}
	if actor == target {
		return errors.Wrap(lib.ErrConflict, "cannot demote yourself")
	}
	return setRole(root, target, types.RoleUser)
}

func setRole(root, target string, role types.Role) error {
	users, err := lib.LoadUsers(root)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username == target {
			users[i].Role = role
			if err := lib.SaveUsers(root, users); err != nil {
				return err
			}
			log.WithFields(log.Fields{"user": target, "role": role}).Info("changed role")
			return nil
		}
	}
	return errors.Wrap(lib.ErrUserNotFound, target)
}
