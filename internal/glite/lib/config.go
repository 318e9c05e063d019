package lib

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/gingerrexayers/glite-go/internal/glite/types"
)

// Visibility values stored in the config file. Anything else, or a missing
// key, is treated as private.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

func init() {
	// The config file format is flat `key=value` lines; disable the default
	// `key = value` padding so writes stay byte-compatible.
	ini.PrettyFormat = false
}

// ReadRepoConfig loads .glite/config into a RepoConfig.
func ReadRepoConfig(repoRoot string) (types.RepoConfig, error) {
	cfg, err := ini.Load(ConfigPath(repoRoot))
	if err != nil {
		return types.RepoConfig{}, errors.Wrap(err, "loading repository config")
	}
	section := cfg.Section("")
	return types.RepoConfig{
		Name:       section.Key("name").String(),
		Owner:      section.Key("owner").String(),
		Visibility: section.Key("visibility").String(),
		Created:    section.Key("created").String(),
	}, nil
}

// WriteRepoConfig writes all keys of a RepoConfig to .glite/config.
func WriteRepoConfig(repoRoot string, rc types.RepoConfig) error {
	cfg := ini.Empty()
	section := cfg.Section("")
	section.Key("name").SetValue(rc.Name)
	section.Key("owner").SetValue(rc.Owner)
	section.Key("visibility").SetValue(rc.Visibility)
	section.Key("created").SetValue(rc.Created)
	if err := cfg.SaveTo(ConfigPath(repoRoot)); err != nil {
		return errors.Wrap(err, "writing repository config")
	}
	return nil
}

// GetConfigValue reads a single key from .glite/config.
func GetConfigValue(repoRoot, key string) (string, error) {
	cfg, err := ini.Load(ConfigPath(repoRoot))
	if err != nil {
		return "", errors.Wrap(err, "loading repository config")
	}
	return cfg.Section("").Key(key).String(), nil
}

// SetConfigValue sets a single key in .glite/config, preserving the others.
func SetConfigValue(repoRoot, key, value string) error {
	cfg, err := ini.Load(ConfigPath(repoRoot))
	if err != nil {
		return errors.Wrap(err, "loading repository config")
	}
	cfg.Section("").Key(key).SetValue(value)
	if err := cfg.SaveTo(ConfigPath(repoRoot)); err != nil {
		return errors.Wrap(err, "writing repository config")
	}
	return nil
}

// GetVisibility returns the visibility of a repository. A missing config file
// or unknown value reads as private.
func GetVisibility(root, owner, repo string) string {
	repoRoot := RepoDir(root, owner, repo)
	if _, err := os.Stat(ConfigPath(repoRoot)); err != nil {
		return VisibilityPrivate
	}
	value, err := GetConfigValue(repoRoot, "visibility")
	if err != nil || value != VisibilityPublic {
		return VisibilityPrivate
	}
	return VisibilityPublic
}

// SetVisibility flips the visibility key of a repository's config.
func SetVisibility(root, owner, repo string, public bool) error {
	value := VisibilityPrivate
	if public {
		value = VisibilityPublic
	}
	return SetConfigValue(RepoDir(root, owner, repo), "visibility", value)
}
