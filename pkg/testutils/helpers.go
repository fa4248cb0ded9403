package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestFiles creates files whose content is their own name, so a
// file can be traced after it has been renamed
func CreateTestFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	files := make(map[string]string, len(names))
	for _, name := range names {
		files[name] = name
	}
	CreateTestFilesWithContent(t, dir, files)
}

// SnapshotDir maps every immediate child name to its content; directories
// map to the empty string
func SnapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	snap := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			snap[entry.Name()+"/"] = ""
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		snap[entry.Name()] = string(data)
	}
	return snap
}

// FakeDirEntry implements os.DirEntry for testing
type FakeDirEntry struct {
	EntryName string
	Dir       bool
	Size      int64
	InfoErr   error
}

func (e *FakeDirEntry) Name() string { return e.EntryName }
func (e *FakeDirEntry) IsDir() bool  { return e.Dir }

func (e *FakeDirEntry) Type() fs.FileMode {
	if e.Dir {
		return fs.ModeDir
	}
	return 0
}

func (e *FakeDirEntry) Info() (os.FileInfo, error) {
	if e.InfoErr != nil {
		return nil, e.InfoErr
	}
	return &FakeFileInfo{FileName: e.EntryName, FileSize: e.Size, Dir: e.Dir}, nil
}

// FakeFileInfo implements os.FileInfo for testing
type FakeFileInfo struct {
	FileName string
	FileSize int64
	Dir      bool
}

func (i *FakeFileInfo) Name() string       { return i.FileName }
func (i *FakeFileInfo) Size() int64        { return i.FileSize }
func (i *FakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i *FakeFileInfo) IsDir() bool        { return i.Dir }
func (i *FakeFileInfo) Sys() any           { return nil }

func (i *FakeFileInfo) Mode() fs.FileMode {
	if i.Dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// File returns a fake regular file entry
func File(name string, size int64) os.DirEntry {
	return &FakeDirEntry{EntryName: name, Size: size}
}

// Dir returns a fake directory entry
func Dir(name string) os.DirEntry {
	return &FakeDirEntry{EntryName: name, Dir: true}
}

// Unreadable returns an entry whose metadata cannot be read
func Unreadable(name string, err error) os.DirEntry {
	return &FakeDirEntry{EntryName: name, InfoErr: err}
}
