package lib

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/pkg/errors"
)

// AddIgnorePattern appends one pattern line to the repository's .gliteignore.
func AddIgnorePattern(repoRoot, pattern string) error {
	f, err := os.OpenFile(IgnorePath(repoRoot), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "opening .gliteignore")
	}
	defer f.Close()
	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return errors.Wrap(err, "appending ignore pattern")
	}
	return nil
}

// IsIgnored reports whether a workspace-relative path matches a pattern in
// the repository's .gliteignore. A missing or unreadable ignore file matches
// nothing. The matcher is rebuilt per call; repositories are small and the
// engine holds no long-lived caches.
func IsIgnored(repoRoot, relPath string) bool {
	content, err := os.ReadFile(IgnorePath(repoRoot))
	if err != nil {
		return false
	}

	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Directory patterns need a glob suffix for the gitignore library to
		// match files beneath them.
		if strings.HasSuffix(trimmed, "/") {
			trimmed += "**"
		}
		patterns = append(patterns, trimmed)
	}
	if len(patterns) == 0 {
		return false
	}

	matcher := gitignore.New(
		strings.NewReader(strings.Join(patterns, "\n")),
		WorkspaceDir(repoRoot),
		func(err gitignore.Error) bool { return false },
	)
	if matcher == nil {
		return false
	}

	// Relative matches against the base without consulting the process
	// working directory, which is what a workspace-relative path needs.
	match := matcher.Relative(filepath.ToSlash(relPath), false)
	if match == nil {
		return false
	}
	return match.Ignore()
}
