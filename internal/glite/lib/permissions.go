package lib

import (
	"os"
	"sort"
	"strings"

	"github.com/google/renameio"
	"github.com/pkg/errors"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// LoadPermissions parses the permissions.tsv map. Each line is
// "<owner>/<repo>\t<comma-separated-usernames>"; an absent second field or a
// trailing tab both read as an empty collaborator set.
func LoadPermissions(root string) (types.PermissionMap, error) {
	perms := make(types.PermissionMap)
	content, err := os.ReadFile(PermissionsPath(root))
	if os.IsNotExist(err) {
		return perms, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading permission map")
	}
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		set := make(map[string]bool)
		if len(parts) >= 2 {
			for _, name := range strings.Split(parts[1], ",") {
				if name != "" {
					set[name] = true
				}
			}
		}
		perms[parts[0]] = set
	}
	return perms, nil
}

// SavePermissions replaces the permissions.tsv map atomically. Keys and
// collaborator names are written sorted so saves are deterministic; keys with
// empty sets are omitted.
func SavePermissions(root string, perms types.PermissionMap) error {
	keys := make([]string, 0, len(perms))
	for key := range perms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		set := perms[key]
		if len(set) == 0 {
			continue
		}
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString(key)
		b.WriteByte('\t')
		b.WriteString(strings.Join(names, ","))
		b.WriteByte('\n')
	}
	if err := renameio.WriteFile(PermissionsPath(root), []byte(b.String()), 0644); err != nil {
		return errors.Wrap(err, "writing permission map")
	}
	return nil
}
