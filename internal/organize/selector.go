package organize

import (
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"tvrename/internal/config"
	serr "tvrename/internal/errors"
	log "tvrename/internal/log"
	"tvrename/pkg/types"
)

// Selector narrows scanned entries to the files that will be renamed and
// puts them in episode order
type Selector struct {
	ext     string
	sort    types.SortDirection
	exclude []glob.Glob
}

// NewSelector builds a Selector for a resolved run
func NewSelector(run config.Run) (*Selector, error) {
	s := &Selector{ext: run.Ext, sort: run.Sort}
	for _, pattern := range run.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, serr.NewConfigError("invalid exclude pattern", pattern, serr.InvalidConfig, err)
		}
		s.exclude = append(s.exclude, g)
	}
	return s, nil
}

// Select keeps files whose extension is exactly the run's extension and
// whose name matches no exclude pattern, ordered by full path. The input
// slice is not modified.
func (s *Selector) Select(entries []types.Entry) []types.Entry {
	var selected []types.Entry
	for _, entry := range entries {
		if !entry.HasExt(s.ext) {
			continue
		}
		if s.excluded(entry.Name) {
			log.Debugf("Excluded by pattern: %s", entry.Name)
			continue
		}
		selected = append(selected, entry)
	}

	cmp := func(a, b types.Entry) int { return strings.Compare(a.Path, b.Path) }
	if s.sort == types.Descending {
		cmp = func(a, b types.Entry) int { return strings.Compare(b.Path, a.Path) }
	}
	slices.SortStableFunc(selected, cmp)
	return selected
}

func (s *Selector) excluded(name string) bool {
	for _, g := range s.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Select is a shorthand for a Selector without exclude patterns
func Select(entries []types.Entry, ext string, sort types.SortDirection) []types.Entry {
	s := &Selector{ext: ext, sort: sort}
	return s.Select(entries)
}
