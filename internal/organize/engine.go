package organize

import (
	"fmt"
	"path/filepath"

	"tvrename/internal/config"
	serr "tvrename/internal/errors"
	"tvrename/internal/fsys"
	"tvrename/internal/log"
	"tvrename/pkg/types"
)

// Engine assigns episode numbers and renames files
type Engine struct {
	fs       fsys.FileSystem
	name     string
	season   int
	ext      string
	dryRun   bool
	onResult func(types.RenameResult)
}

// NewWithConfig creates a rename Engine for a resolved run
func NewWithConfig(run config.Run) *Engine {
	return &Engine{
		fs:     fsys.OS{},
		name:   run.Name,
		season: run.Season,
		ext:    run.Ext,
		dryRun: run.DryRun,
	}
}

// SetFileSystem replaces the filesystem renames go through
func (e *Engine) SetFileSystem(fs fsys.FileSystem) {
	e.fs = fs
}

// OnResult registers a callback invoked after each entry is handled
func (e *Engine) OnResult(fn func(types.RenameResult)) {
	e.onResult = fn
}

// EpisodeName builds "<name>.S<season>E<episode>.<ext>", with season and
// episode zero-padded to at least two digits
func EpisodeName(name string, season, episode int, ext string) string {
	return fmt.Sprintf("%s.S%02dE%02d.%s", name, season, episode, ext)
}

// RenameAll walks entries in the given order. Every entry that is a file
// with the run's extension gets the next episode number, starting at 1;
// anything else is skipped without using up a number. A failed rename is
// recorded and the walk goes on.
func (e *Engine) RenameAll(entries []types.Entry) []types.RenameResult {
	results := make([]types.RenameResult, 0, len(entries))
	episode := 0

	for _, entry := range entries {
		if !entry.HasExt(e.ext) {
			log.Debugf("Not renaming %s", entry.Path)
			continue
		}
		episode++

		newName := EpisodeName(e.name, e.season, episode, e.ext)
		result := types.RenameResult{
			RenamePlan: types.RenamePlan{
				Entry:   entry,
				Episode: episode,
				NewName: newName,
				NewPath: filepath.Join(entry.Dir(), newName),
			},
		}
		e.apply(&result)

		results = append(results, result)
		if e.onResult != nil {
			e.onResult(result)
		}
	}
	return results
}

func (e *Engine) apply(result *types.RenameResult) {
	src, dest := result.Entry.Path, result.NewPath
	switch {
	case filepath.Clean(src) == filepath.Clean(dest):
		result.Status = types.Unchanged
	case e.dryRun:
		result.Status = types.Planned
	default:
		if err := e.fs.Rename(src, dest); err != nil {
			result.Status = types.Failed
			result.Error = serr.NewFileError("rename failed", src, serr.RenameFailure, err)
			return
		}
		result.Status = types.Renamed
	}
}
