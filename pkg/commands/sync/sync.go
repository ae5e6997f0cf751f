// Package sync implements the gitignore-to-settings synchronization
// pipeline: resolve the global gitignore, translate its patterns, load
// the existing settings document, merge, and either report (dry-run) or
// write the result atomically.
package sync

import (
	"path/filepath"

	"github.com/arthur-debert/gentlegoose/pkg/config"
	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/arthur-debert/gentlegoose/pkg/filesystem"
	"github.com/arthur-debert/gentlegoose/pkg/gitignore"
	"github.com/arthur-debert/gentlegoose/pkg/logging"
	"github.com/arthur-debert/gentlegoose/pkg/settings"
	"github.com/arthur-debert/gentlegoose/pkg/types"
	"github.com/rs/zerolog"
)

// Options holds options for the sync command
type Options struct {
	// SettingsFile is the target settings file; empty means the
	// configured default
	SettingsFile string

	// ExclusionsKey overrides the settings key holding the exclusions;
	// empty means the configured default
	ExclusionsKey string

	// UpdateExisting merges into an existing settings file instead of
	// skipping it
	UpdateExisting bool

	// DryRun computes and reports changes without touching the filesystem
	DryRun bool

	// Config supplies defaults and pattern overrides; nil loads the
	// layered configuration
	Config *config.Config

	// Environment overrides the gitignore resolution inputs, for testing
	Environment *gitignore.Environment

	// FileSystem allows injecting a filesystem for testing
	FileSystem types.FS
}

// Sync runs the synchronization pipeline and returns its terminal state.
// Fatal errors are returned before any write happens; the atomic
// temp-and-rename write prevents partial content on failure.
func Sync(opts Options) (*types.SyncResult, error) {
	logger := logging.GetLogger("commands.sync")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	settingsPath := opts.SettingsFile
	if settingsPath == "" {
		settingsPath = cfg.SettingsFile
	}
	settingsPath, err := filepath.Abs(settingsPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"invalid settings file path %s", opts.SettingsFile)
	}

	exclusionsKey := opts.ExclusionsKey
	if exclusionsKey == "" {
		exclusionsKey = cfg.ExclusionsKey
	}
	if exclusionsKey == "" {
		exclusionsKey = settings.DefaultExclusionsKey
	}

	logger.Info().
		Str("settings", settingsPath).
		Bool("updateExisting", opts.UpdateExisting).
		Bool("dryRun", opts.DryRun).
		Msg("Starting sync")

	if err := validateSettingsPath(fsys, settingsPath); err != nil {
		return nil, err
	}

	exists := fileExists(fsys, settingsPath)

	// Create-only mode never reads or modifies an existing file
	if exists && !opts.UpdateExisting {
		logger.Info().Str("settings", settingsPath).
			Msg("Settings file exists, use update mode to add new patterns")
		return &types.SyncResult{
			Status:       types.SyncStatusSkipped,
			SettingsPath: settingsPath,
		}, nil
	}

	patterns, sourcePath, err := resolvePatterns(opts.Environment, logger)
	if err != nil {
		return nil, err
	}

	// Per-project overrides live next to the target
	project, err := config.LoadProjectConfig(fsys, config.ProjectConfigPath(settingsPath))
	if err != nil {
		return nil, err
	}
	effective := *cfg
	effective.ApplyProject(project)
	patterns = effective.FilterPatterns(patterns)

	if len(patterns) == 0 && !exists {
		logger.Info().Msg("No patterns to sync and no settings file to create")
		return &types.SyncResult{
			Status:       types.SyncStatusUpToDate,
			SettingsPath: settingsPath,
			SourcePath:   sourcePath,
		}, nil
	}

	var doc *settings.Document
	if exists {
		content, err := fsys.ReadFile(settingsPath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess,
				"failed to read settings file %s", settingsPath)
		}
		doc, err = settings.ParseDocument(content)
		if err != nil {
			return nil, err
		}
	}

	merged, err := settings.Merge(doc, exclusionsKey, patterns)
	if err != nil {
		return nil, err
	}

	result := &types.SyncResult{
		SettingsPath:  settingsPath,
		SourcePath:    sourcePath,
		Added:         merged.Added,
		Existing:      merged.Existing,
		ExistingCount: merged.ExistingCount,
		Created:       !exists,
	}

	if len(merged.Added) == 0 && exists {
		logger.Info().Msg("All patterns already present in settings")
		result.Status = types.SyncStatusUpToDate
		result.Created = false
		return result, nil
	}

	if opts.DryRun {
		logger.Info().
			Int("patterns", len(merged.Added)).
			Str("settings", settingsPath).
			Msg("Dry run, no changes written")
		result.Status = types.SyncStatusDryRun
		return result, nil
	}

	content, err := merged.Doc.MarshalIndent()
	if err != nil {
		return nil, err
	}

	if err := writeAtomic(fsys, settingsPath, content); err != nil {
		return nil, err
	}

	logger.Info().
		Int("added", len(merged.Added)).
		Str("settings", settingsPath).
		Msg("Settings updated")

	result.Status = types.SyncStatusWritten
	return result, nil
}

// resolvePatterns locates the global gitignore and translates its
// patterns. A missing source degrades to an empty pattern set.
func resolvePatterns(env *gitignore.Environment, logger zerolog.Logger) ([]string, string, error) {
	resolveEnv := gitignore.OSEnvironment()
	if env != nil {
		resolveEnv = *env
	}

	source, err := gitignore.Resolve(resolveEnv)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrSourceNotFound) {
			logger.Info().Msg("No global gitignore file found, continuing with no patterns")
			return nil, "", nil
		}
		return nil, "", err
	}

	logger.Debug().
		Str("source", source.Path).
		Int("patterns", len(source.Patterns)).
		Msg("Resolved global gitignore")

	return gitignore.TranslateAll(source.Patterns), source.Path, nil
}

// fileExists reports whether path exists as a regular file
func fileExists(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// validateSettingsPath rejects targets that can never be written: a
// directory at the target path, or a parent that exists but is not a
// directory.
func validateSettingsPath(fsys types.FS, path string) error {
	if info, err := fsys.Stat(path); err == nil && info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput,
			"settings path exists but is not a file: %s", path)
	}

	parent := filepath.Dir(path)
	if info, err := fsys.Stat(parent); err == nil && !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput,
			"settings parent path is not a directory: %s", parent)
	}

	return nil
}
