package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Entry represents one immediate child of a scanned directory
type Entry struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	Ext   string `json:"ext,omitempty"` // Suffix after the last dot, without the dot
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// NewEntry builds an Entry for name inside dir.
func NewEntry(dir, name string, isDir bool, size int64) Entry {
	return Entry{
		Path:  filepath.Join(dir, name),
		Name:  name,
		Ext:   Extension(name),
		IsDir: isDir,
		Size:  size,
	}
}

// Dir returns the directory holding the entry
func (e Entry) Dir() string {
	return filepath.Dir(e.Path)
}

// HasExt reports whether the entry is a file carrying exactly ext.
// An empty ext never matches.
func (e Entry) HasExt(ext string) bool {
	return ext != "" && !e.IsDir && e.Ext == ext
}

// String returns a human-readable representation
func (e Entry) String() string {
	kind := "file"
	if e.IsDir {
		kind = "dir"
	}
	return fmt.Sprintf("%s (%s, ext=%q, %d bytes)", e.Path, kind, e.Ext, e.Size)
}

// Extension returns the suffix after the last dot of a file name.
// Names without a dot, dot-files like ".hidden" and names ending in a dot
// have no extension.
func Extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i+1:]
}
