package sync

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/arthur-debert/gentlegoose/pkg/types"
)

// tempSuffix marks the intermediate file of an atomic write
const tempSuffix = ".tmp"

// writeAtomic writes content to path by writing a temp file in the same
// directory and renaming it into place, so a failure never truncates the
// target. Parent directories are created as needed.
func writeAtomic(fsys types.FS, path string, content []byte) error {
	parent := filepath.Dir(path)
	if _, err := fsys.Stat(parent); err != nil {
		if err := fsys.MkdirAll(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create settings directory %s", parent)
		}
	}

	tempPath := path + tempSuffix
	if err := fsys.WriteFile(tempPath, content, 0644); err != nil {
		// A partial write may have left the temp file behind
		_ = fsys.Remove(tempPath)
		return wrapWriteError(err, path)
	}

	if err := fsys.Rename(tempPath, path); err != nil {
		// Best effort cleanup; the rename error is the one that matters
		_ = fsys.Remove(tempPath)
		return wrapWriteError(err, path)
	}

	return nil
}

func wrapWriteError(err error, path string) error {
	code := errors.ErrFileAccess
	if stderrors.Is(err, fs.ErrPermission) {
		code = errors.ErrWritePermission
	}
	return errors.Wrapf(err, code, "failed to write settings file %s", path).
		WithDetail("path", path)
}
