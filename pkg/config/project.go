package config

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/arthur-debert/gentlegoose/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// ProjectConfigFile is the name of the per-project override file
const ProjectConfigFile = ".gentlegoose.toml"

// ProjectConfig holds per-project pattern overrides from .gentlegoose.toml
type ProjectConfig struct {
	// Add lists raw patterns synced in addition to the global ones
	Add []string `toml:"add"`

	// Skip lists raw patterns excluded from syncing for this project
	Skip []string `toml:"skip"`
}

// LoadProjectConfig reads the project override file at path.
// A missing file is not an error and yields a nil config.
func LoadProjectConfig(fsys types.FS, path string) (*ProjectConfig, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read project config %s", path)
	}

	var cfg ProjectConfig
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse project config %s", path)
	}

	return &cfg, nil
}
