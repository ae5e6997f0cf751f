package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage for tests.
// Paths are stored in cleaned absolute form; parent directories are
// created implicitly on write, mirroring the permissive behavior tests
// usually want, while MkdirAll still records directories explicitly so
// Stat can distinguish them.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// errorPaths injects errors for specific paths; errorOps scopes an
	// injection to a single operation name
	errorPaths map[string]error
	errorOps   map[string]error

	writeCount int
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		dirs:       map[string]bool{"/": true},
		errorPaths: make(map[string]error),
		errorOps:   make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

// InjectErrorOp makes only the named operation (stat, read, write,
// mkdir, rename, remove) on path fail with err
func (m *MemoryFS) InjectErrorOp(op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorOps[op+" "+filepath.Clean(path)] = err
}

// WriteCount returns how many WriteFile calls were made
func (m *MemoryFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writeCount
}

// Paths returns every file path currently stored, sorted
func (m *MemoryFS) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *MemoryFS) checkError(op, path string) error {
	path = filepath.Clean(path)
	if err, ok := m.errorOps[op+" "+path]; ok {
		return err
	}
	if err, ok := m.errorPaths[path]; ok {
		return err
	}
	return nil
}

// Stat implements types.FS
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkError("stat", name); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	if content, ok := m.files[name]; ok {
		return &memFileInfo{name: filepath.Base(name), size: int64(len(content)), mode: 0644}, nil
	}
	if m.dirs[name] {
		return &memFileInfo{name: filepath.Base(name), mode: 0755 | os.ModeDir, isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadFile implements types.FS
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.checkError("read", name); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	content, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// WriteFile implements types.FS
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("write", name); err != nil {
		return err
	}

	name = filepath.Clean(name)
	content := make([]byte, len(data))
	copy(content, data)
	m.files[name] = content
	m.writeCount++
	return nil
}

// MkdirAll implements types.FS
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("mkdir", path); err != nil {
		return err
	}

	path = filepath.Clean(path)
	for path != "/" && path != "." {
		m.dirs[path] = true
		path = filepath.Dir(path)
	}
	return nil
}

// Rename implements types.FS
func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("rename", oldpath); err != nil {
		return err
	}
	if err := m.checkError("rename", newpath); err != nil {
		return err
	}

	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)
	content, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	m.files[newpath] = content
	delete(m.files, oldpath)
	return nil
}

// Remove implements types.FS
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkError("remove", name); err != nil {
		return err
	}

	name = filepath.Clean(name)
	if _, ok := m.files[name]; ok {
		delete(m.files, name)
		return nil
	}
	if m.dirs[name] {
		delete(m.dirs, name)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}

// memFileInfo implements fs.FileInfo for in-memory nodes
type memFileInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (fi *memFileInfo) Name() string       { return fi.name }
func (fi *memFileInfo) Size() int64        { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.isDir }
func (fi *memFileInfo) Sys() interface{}   { return nil }
