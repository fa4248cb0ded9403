package analysis

import (
	"os"
	"path/filepath"

	serr "tvrename/internal/errors"
	"tvrename/internal/fsys"
	log "tvrename/internal/log"
	"tvrename/pkg/types"
)

// Engine lists a directory into entries and inspects them
type Engine struct {
	fs fsys.FileSystem
}

// New creates an Engine on the real filesystem
func New() *Engine {
	return &Engine{fs: fsys.OS{}}
}

// NewWithFileSystem creates an Engine on the given filesystem
func NewWithFileSystem(fs fsys.FileSystem) *Engine {
	return &Engine{fs: fs}
}

// ScanDirectory lists the immediate children of dir.
//
// A missing dir yields a PathNotFound error and no entries; callers must
// stop there. A dir that exists but cannot be listed yields a
// DirectoryUnreadable error together with whatever entries were read
// (usually none); callers may carry on. Children whose metadata cannot be
// read are skipped.
func (e *Engine) ScanDirectory(dir string) ([]types.Entry, error) {
	logger := log.LogWithFields(log.F("directory", dir))

	if _, err := e.fs.Stat(dir); err != nil && os.IsNotExist(err) {
		return nil, serr.NewFileError("path not found", dir, serr.PathNotFound, err)
	}

	dirEntries, readErr := e.fs.ReadDir(dir)

	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			entryErr := serr.NewFileError("failed to read entry", filepath.Join(dir, de.Name()), serr.EntryUnreadable, err)
			log.LogWithError(entryErr).Debug("Skipping unreadable entry")
			continue
		}

		var size int64
		if !de.IsDir() {
			size = info.Size()
		}
		entry := types.NewEntry(dir, de.Name(), de.IsDir(), size)
		logger.Debugf("Found %s", entry)
		entries = append(entries, entry)
	}

	if readErr != nil {
		return entries, serr.NewFileError("failed to read directory", dir, serr.DirectoryUnreadable, readErr)
	}
	return entries, nil
}
