// Package config loads gentlegoose's layered configuration: embedded
// defaults, then the user config file under the XDG config directory,
// then GENTLEGOOSE_* environment variables. A per-project
// .gentlegoose.toml next to the target settings file can add or skip
// patterns for that project.
package config

import "path/filepath"

// Config holds the resolved application configuration
type Config struct {
	// SettingsFile is the target settings file, relative paths resolve
	// against the working directory
	SettingsFile string `koanf:"settings_file"`

	// ExclusionsKey is the settings key holding the exclusion globs
	ExclusionsKey string `koanf:"exclusions_key"`

	// AlwaysAdd lists raw patterns appended after the gitignore ones on
	// every run
	AlwaysAdd []string `koanf:"always_add"`

	// Skip lists raw patterns that are never synced
	Skip []string `koanf:"skip"`
}

// ApplyProject overlays a project config onto the base configuration
func (c *Config) ApplyProject(p *ProjectConfig) {
	if p == nil {
		return
	}
	c.AlwaysAdd = append(c.AlwaysAdd, p.Add...)
	c.Skip = append(c.Skip, p.Skip...)
}

// FilterPatterns removes skipped patterns and appends the always-add
// list, preserving encounter order
func (c *Config) FilterPatterns(patterns []string) []string {
	skip := make(map[string]struct{}, len(c.Skip))
	for _, s := range c.Skip {
		skip[s] = struct{}{}
	}

	var out []string
	for _, p := range append(append([]string{}, patterns...), c.AlwaysAdd...) {
		if _, skipped := skip[p]; skipped {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProjectConfigPath returns the path of the optional per-project config
// file for a given settings file, one directory above the settings
// directory (the project root for .zed/settings.json layouts)
func ProjectConfigPath(settingsPath string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(settingsPath)), ProjectConfigFile)
}
