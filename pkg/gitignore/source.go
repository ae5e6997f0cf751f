package gitignore

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/arthur-debert/gentlegoose/pkg/filesystem"
	"github.com/arthur-debert/gentlegoose/pkg/logging"
	"github.com/arthur-debert/gentlegoose/pkg/types"
)

// GlobalFallbackName is the conventional global gitignore file in the
// home directory, checked after the XDG location.
const GlobalFallbackName = ".gitignore_global"

// Environment carries the ambient inputs consulted during source
// resolution. Fields left zero are filled from the OS by Resolve.
type Environment struct {
	// ConfigHome is the XDG config home directory
	ConfigHome string

	// HomeDir is the user's home directory
	HomeDir string

	// ExcludesFile returns the value of the global core.excludesFile git
	// setting, or an empty string when git is unavailable or the key is
	// not set
	ExcludesFile func() (string, error)

	// FS is used to probe and read candidate files
	FS types.FS
}

// OSEnvironment returns an Environment backed by the real system state.
func OSEnvironment() Environment {
	home, _ := os.UserHomeDir()
	return Environment{
		ConfigHome:   xdg.ConfigHome,
		HomeDir:      home,
		ExcludesFile: gitConfigExcludesFile,
		FS:           filesystem.NewOS(),
	}
}

// Source is a resolved global gitignore file and its parsed patterns.
type Source struct {
	// Path is the file the patterns were read from
	Path string

	// Patterns holds the raw ignore patterns in file order, with blank
	// lines and comments removed
	Patterns []string
}

// Resolve locates the effective global gitignore file and parses it.
// It returns a SOURCE_NOT_FOUND error when no candidate file exists;
// callers are expected to treat that as an empty pattern set.
func Resolve(env Environment) (*Source, error) {
	logger := logging.GetLogger("gitignore")

	if env.FS == nil {
		env.FS = filesystem.NewOS()
	}
	if env.ExcludesFile == nil {
		env.ExcludesFile = gitConfigExcludesFile
	}

	candidates, err := candidatePaths(env)
	if err != nil {
		return nil, err
	}

	for _, path := range candidates {
		info, err := env.FS.Stat(path)
		if err != nil || info.IsDir() {
			logger.Debug().Str("path", path).Msg("Candidate gitignore not found")
			continue
		}

		content, err := env.FS.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceRead,
				"failed to read global gitignore %s", path)
		}

		logger.Debug().Str("path", path).Msg("Using global gitignore")
		return &Source{Path: path, Patterns: ParsePatterns(content)}, nil
	}

	return nil, errors.New(errors.ErrSourceNotFound,
		"no global gitignore file found").
		WithDetail("candidates", candidates)
}

// candidatePaths builds the ordered list of paths to probe.
func candidatePaths(env Environment) ([]string, error) {
	var candidates []string

	configured, err := env.ExcludesFile()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceRead,
			"failed to query git config for core.excludesFile")
	}
	if configured != "" {
		expanded, err := expandTilde(configured, env.HomeDir)
		if err == nil {
			candidates = append(candidates, expanded)
		}
	}

	if env.ConfigHome != "" {
		candidates = append(candidates, filepath.Join(env.ConfigHome, "git", "ignore"))
	} else if env.HomeDir != "" {
		candidates = append(candidates, filepath.Join(env.HomeDir, ".config", "git", "ignore"))
	}

	if env.HomeDir != "" {
		candidates = append(candidates, filepath.Join(env.HomeDir, GlobalFallbackName))
	}

	return candidates, nil
}

// ParsePatterns extracts the raw ignore patterns from gitignore content.
// Blank lines and comment lines are skipped.
func ParsePatterns(content []byte) []string {
	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// gitConfigExcludesFile reads the global core.excludesFile from git config.
// Returns empty string if git is not available or the key is not set.
func gitConfigExcludesFile() (string, error) {
	cmd := exec.Command("git", "config", "--global", "core.excludesFile")
	out, err := cmd.Output()
	if err != nil {
		// git not installed, key not set, or other error, fall through
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

// expandTilde expands a leading ~/ to the given home directory.
func expandTilde(path, homeDir string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	if homeDir == "" {
		return "", errors.New(errors.ErrFileAccess,
			"cannot expand ~: home directory unknown")
	}
	if path == "~" {
		return homeDir, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}
	// ~user form is left untouched; git would have expanded it already
	return path, nil
}
