// Package fsys is the narrow filesystem surface the rename pipeline uses.
package fsys

import (
	"io/fs"
	"os"
)

//go:generate mockgen -source=fsys.go -destination=../mock/mock_fsys.go -package=mock

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	Rename(oldpath, newpath string) error
}

// OS implements FileSystem using the real OS filesystem.
type OS struct{}

func (OS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (OS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Rename moves oldpath to newpath but never replaces an existing file;
// POSIX rename(2) would overwrite silently.
func (OS) Rename(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrExist}
	}
	return os.Rename(oldpath, newpath)
}
