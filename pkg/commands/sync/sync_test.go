package sync

import (
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/arthur-debert/gentlegoose/pkg/config"
	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/arthur-debert/gentlegoose/pkg/gitignore"
	"github.com/arthur-debert/gentlegoose/pkg/testutil"
	"github.com/arthur-debert/gentlegoose/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsPath = "/work/repo/.zed/settings.json"

func testEnv(fsys *testutil.MemoryFS, gitignoreContent string) *gitignore.Environment {
	if gitignoreContent != "" {
		_ = fsys.WriteFile("/home/user/.config/git/ignore", []byte(gitignoreContent), 0644)
	}
	return &gitignore.Environment{
		ConfigHome:   "/home/user/.config",
		HomeDir:      "/home/user",
		ExcludesFile: func() (string, error) { return "", nil },
		FS:           fsys,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		SettingsFile:  settingsPath,
		ExclusionsKey: "file_scan_exclusions",
	}
}

func testOptions(fsys *testutil.MemoryFS, gitignoreContent string) Options {
	return Options{
		SettingsFile: settingsPath,
		Config:       testConfig(),
		Environment:  testEnv(fsys, gitignoreContent),
		FileSystem:   fsys,
	}
}

func readExclusions(t *testing.T, fsys *testutil.MemoryFS) []string {
	t.Helper()
	content, err := fsys.ReadFile(settingsPath)
	require.NoError(t, err)

	var parsed map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(content, &parsed))

	var exclusions []string
	require.NoError(t, json.Unmarshal(parsed["file_scan_exclusions"], &exclusions))
	return exclusions
}

func TestSync_CreatesNewSettingsFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	opts := testOptions(fsys, ".env\nnode_modules/\n")

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusWritten, result.Status)
	assert.True(t, result.Created)
	assert.Equal(t, []string{"**/.env", "**/node_modules/"}, result.Added)
	assert.Equal(t, "/home/user/.config/git/ignore", result.SourcePath)

	assert.Equal(t, []string{"**/.env", "**/node_modules/"}, readExclusions(t, fsys))
}

func TestSync_DefaultModeSkipsExistingFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	original := []byte(`{"file_scan_exclusions": ["**/.env"]}`)
	require.NoError(t, fsys.WriteFile(settingsPath, original, 0644))

	opts := testOptions(fsys, "build/\n")
	writesBefore := fsys.WriteCount()

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusSkipped, result.Status)
	assert.Empty(t, result.Added)
	assert.Equal(t, writesBefore, fsys.WriteCount(), "skip must not write")

	content, err := fsys.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Equal(t, original, content, "skip must not modify the file")
}

func TestSync_UpdateModeAppendsAndPreservesOtherKeys(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile(settingsPath,
		[]byte(`{"file_scan_exclusions": ["**/.env"], "theme": "dark"}`), 0644))

	opts := testOptions(fsys, "build/\n")
	opts.UpdateExisting = true

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusWritten, result.Status)
	assert.False(t, result.Created)
	assert.Equal(t, []string{"**/build/"}, result.Added)
	assert.Equal(t, 1, result.ExistingCount)
	assert.Equal(t, []string{"**/.env", "**/build/"}, readExclusions(t, fsys))

	var parsed map[string]json.RawMessage
	content, _ := fsys.ReadFile(settingsPath)
	require.NoError(t, json.Unmarshal(content, &parsed))
	assert.Equal(t, json.RawMessage(`"dark"`), parsed["theme"])
}

func TestSync_UpdateModeNoDuplicates(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile(settingsPath,
		[]byte(`{"file_scan_exclusions": ["**/.DS_Store"]}`), 0644))

	opts := testOptions(fsys, ".DS_Store\n")
	writesBefore := fsys.WriteCount()
	opts.UpdateExisting = true

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusUpToDate, result.Status)
	assert.Empty(t, result.Added)
	assert.Equal(t, writesBefore, fsys.WriteCount(), "up-to-date must not write")
	assert.Equal(t, []string{"**/.DS_Store"}, readExclusions(t, fsys))
}

func TestSync_DryRunCreateTouchesNothing(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	opts := testOptions(fsys, ".env\n")
	opts.DryRun = true
	writesBefore := fsys.WriteCount()

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusDryRun, result.Status)
	assert.Equal(t, []string{"**/.env"}, result.Added)
	assert.Equal(t, writesBefore, fsys.WriteCount(), "dry run must not write")

	_, err = fsys.Stat(settingsPath)
	assert.Error(t, err, "dry run must not create the settings file")
}

func TestSync_DryRunUpdateReportsOnlyNewPatterns(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile(settingsPath,
		[]byte(`{"file_scan_exclusions": ["**/.env"]}`), 0644))

	opts := testOptions(fsys, ".env\nbuild/\ndist/\n")
	opts.UpdateExisting = true
	opts.DryRun = true

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusDryRun, result.Status)
	assert.Equal(t, []string{"**/build/", "**/dist/"}, result.Added)
	assert.Equal(t, []string{"**/.env"}, readExclusions(t, fsys))
}

func TestSync_NoSourceNoFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	opts := testOptions(fsys, "")

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusUpToDate, result.Status)
	_, statErr := fsys.Stat(settingsPath)
	assert.Error(t, statErr, "no settings file should be created without patterns")
}

func TestSync_MalformedExclusions(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile(settingsPath,
		[]byte(`{"file_scan_exclusions": "not-a-list"}`), 0644))

	opts := testOptions(fsys, ".env\n")
	opts.UpdateExisting = true

	_, err := Sync(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedSettings))
}

func TestSync_InvalidJSON(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile(settingsPath, []byte(`{broken`), 0644))

	opts := testOptions(fsys, ".env\n")
	opts.UpdateExisting = true

	_, err := Sync(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrJSONParse))
}

func TestSync_JSONCSettings(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile(settingsPath, []byte(`{
  // keep the tree clean
  "file_scan_exclusions": ["**/.env",],
}`), 0644))

	opts := testOptions(fsys, "build/\n")
	opts.UpdateExisting = true

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusWritten, result.Status)
	assert.Equal(t, []string{"**/.env", "**/build/"}, readExclusions(t, fsys))
}

func TestSync_ProjectConfigOverrides(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.WriteFile("/work/repo/.gentlegoose.toml", []byte(`
add = ["**/coverage/"]
skip = ["**/.env"]
`), 0644))

	opts := testOptions(fsys, ".env\nbuild/\n")

	result, err := Sync(opts)
	require.NoError(t, err)

	assert.Equal(t, types.SyncStatusWritten, result.Status)
	assert.Equal(t, []string{"**/build/", "**/coverage/"}, result.Added)
}

func TestSync_TargetIsDirectory(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll(settingsPath, 0755))

	opts := testOptions(fsys, ".env\n")

	_, err := Sync(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSync_WritePermissionDenied(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.InjectError(settingsPath+".tmp", &fs.PathError{
		Op: "open", Path: settingsPath + ".tmp", Err: fs.ErrPermission,
	})

	opts := testOptions(fsys, ".env\n")

	_, err := Sync(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWritePermission))

	_, statErr := fsys.Stat(settingsPath)
	assert.Error(t, statErr, "failed write must not leave a settings file behind")
}

func TestSync_RenameFailureCleansUpTempFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	fsys.InjectErrorOp("rename", settingsPath, &fs.PathError{
		Op: "rename", Path: settingsPath, Err: fs.ErrPermission,
	})

	opts := testOptions(fsys, ".env\n")

	_, err := Sync(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWritePermission))

	_, statErr := fsys.Stat(settingsPath + ".tmp")
	assert.Error(t, statErr, "failed rename must remove the temp file")
}

func TestSync_WriteFailureCleansUpTempFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	tempPath := settingsPath + ".tmp"
	// A stale temp file from an earlier partial write must not survive a
	// failed write either
	require.NoError(t, fsys.WriteFile(tempPath, []byte("partial"), 0644))
	fsys.InjectErrorOp("write", tempPath, &fs.PathError{
		Op: "open", Path: tempPath, Err: fs.ErrPermission,
	})

	opts := testOptions(fsys, ".env\n")

	_, err := Sync(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWritePermission))

	_, statErr := fsys.Stat(tempPath)
	assert.Error(t, statErr, "failed write must remove the temp file")
}

func TestSync_Idempotent(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	opts := testOptions(fsys, ".env\nnode_modules/\n")

	first, err := Sync(opts)
	require.NoError(t, err)
	assert.Equal(t, types.SyncStatusWritten, first.Status)
	contentAfterFirst, _ := fsys.ReadFile(settingsPath)

	opts.UpdateExisting = true
	second, err := Sync(opts)
	require.NoError(t, err)
	assert.Equal(t, types.SyncStatusUpToDate, second.Status)

	contentAfterSecond, _ := fsys.ReadFile(settingsPath)
	assert.Equal(t, contentAfterFirst, contentAfterSecond)
}
