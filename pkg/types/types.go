// Package types defines the shared types used across gentlegoose:
// the filesystem abstraction and the sync result model.
package types

import "io/fs"

// FS abstracts the filesystem operations gentlegoose performs so that
// commands can be tested against an in-memory implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// SyncStatus represents the terminal state of a sync invocation
type SyncStatus string

const (
	// SyncStatusWritten indicates the settings file was created or updated
	SyncStatusWritten SyncStatus = "written"

	// SyncStatusSkipped indicates the settings file exists and update mode was off
	SyncStatusSkipped SyncStatus = "skipped"

	// SyncStatusDryRun indicates changes were computed but not written
	SyncStatusDryRun SyncStatus = "dry-run"

	// SyncStatusUpToDate indicates every pattern was already present
	SyncStatusUpToDate SyncStatus = "up-to-date"
)

// SyncResult describes the outcome of a sync invocation
type SyncResult struct {
	// Status is the terminal state reached by the pipeline
	Status SyncStatus

	// SettingsPath is the resolved absolute path of the target settings file
	SettingsPath string

	// SourcePath is the global gitignore file the patterns came from,
	// empty when no source was found
	SourcePath string

	// Added holds the translated patterns that were (or would be) appended,
	// in encounter order
	Added []string

	// Existing holds the exclusion patterns already present in the
	// settings file before the merge, in document order
	Existing []string

	// ExistingCount is the number of exclusion entries already present in
	// the settings file before the merge, including non-string entries
	ExistingCount int

	// Created reports whether the settings file was newly created
	Created bool
}
