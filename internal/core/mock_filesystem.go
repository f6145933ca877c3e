package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Paths are slash-separated; parent directories are created implicitly.
type MockFileSystem struct {
	mu     sync.RWMutex
	files  map[string][]byte
	dirs   map[string]bool
	errors map[string]error
	writes []string
}

// NewMockFileSystem returns an empty in-memory filesystem containing only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:  make(map[string][]byte),
		dirs:   map[string]bool{"/": true},
		errors: make(map[string]error),
	}
}

// SetFile stores data at p and creates its parent directories.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	m.files[p] = data
	m.addParents(p)
}

// SetDir creates an (empty) directory and its parents.
func (m *MockFileSystem) SetDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	m.dirs[p] = true
	m.addParents(p)
}

// SetError makes every operation on p fail with err.
func (m *MockFileSystem) SetError(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path.Clean(p)] = err
}

// GetFile returns the stored content of p.
func (m *MockFileSystem) GetFile(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(p)]
	return data, ok
}

// Writes returns the paths passed to WriteFile, in call order.
func (m *MockFileSystem) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.writes)
}

func (m *MockFileSystem) addParents(p string) {
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		m.dirs[dir] = true
		if dir == "/" || dir == "." {
			return
		}
	}
}

// ReadFile implements FileSystem.
func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = path.Clean(p)
	if err, ok := m.errors[p]; ok {
		return nil, err
	}
	if m.dirs[p] {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrInvalid}
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

// WriteFile implements FileSystem. The parent directory must exist.
func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p = path.Clean(p)
	if err, ok := m.errors[p]; ok {
		return err
	}
	if !m.dirs[path.Dir(p)] {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	if m.dirs[p] {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrInvalid}
	}
	m.files[p] = slices.Clone(data)
	m.writes = append(m.writes, p)
	return nil
}

// Stat implements FileSystem.
func (m *MockFileSystem) Stat(ctx context.Context, p string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = path.Clean(p)
	if err, ok := m.errors[p]; ok {
		return nil, err
	}
	if m.dirs[p] {
		return &mockFileInfo{name: path.Base(p), dir: true}, nil
	}
	if data, ok := m.files[p]; ok {
		return &mockFileInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// ReadDir implements FileSystem. Only direct children are returned, sorted by name.
func (m *MockFileSystem) ReadDir(ctx context.Context, p string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p = path.Clean(p)
	if err, ok := m.errors[p]; ok {
		return nil, err
	}
	if !m.dirs[p] {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}

	var entries []os.DirEntry
	for d := range m.dirs {
		if d != p && isDirectChild(p, d) {
			entries = append(entries, fs.FileInfoToDirEntry(&mockFileInfo{name: path.Base(d), dir: true}))
		}
	}
	for f, data := range m.files {
		if isDirectChild(p, f) {
			entries = append(entries, fs.FileInfoToDirEntry(&mockFileInfo{name: path.Base(f), size: int64(len(data))}))
		}
	}

	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

func isDirectChild(parent, child string) bool {
	return path.Dir(child) == parent
}

// Ensure MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *mockFileInfo) Name() string { return i.name }
func (i *mockFileInfo) Size() int64  { return i.size }
func (i *mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return PermPublicRead
}
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }
