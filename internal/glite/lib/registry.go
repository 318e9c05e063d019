package lib

import (
	"os"
	"strings"

	"github.com/google/renameio"
	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// LoadUsers parses the users.tsv registry. Empty lines and lines with fewer
// than three fields are skipped; a missing file reads as an empty registry.
func LoadUsers(root string) ([]types.User, error) {
	content, err := os.ReadFile(UsersPath(root))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading user registry")
	}
	var users []types.User
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		users = append(users, types.User{
			Username:     parts[0],
			PasswordHash: parts[1],
			Role:         types.Role(parts[2]),
		})
	}
	return users, nil
}

// SaveUsers replaces the users.tsv registry. The write goes to a temp file
// first and is renamed into place, so a crash never loses trailing entries.
func SaveUsers(root string, users []types.User) error {
	var b strings.Builder
	for _, user := range users {
		b.WriteString(user.Username)
		b.WriteByte('\t')
		b.WriteString(user.PasswordHash)
		b.WriteByte('\t')
		b.WriteString(string(user.Role))
		b.WriteByte('\n')
	}
	if err := renameio.WriteFile(UsersPath(root), []byte(b.String()), 0644); err != nil {
		return errors.Wrap(err, "writing user registry")
	}
	return nil
}

// FindUser looks up one user by name.
func FindUser(root, username string) (*types.User, error) {
	users, err := LoadUsers(root)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, errors.Wrap(ErrUserNotFound, username)
}

// UserExists reports whether the registry holds username.
func UserExists(root, username string) (bool, error) {
	_, err := FindUser(root, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	return false, err
}
