package analysis

import (
	log "tvrename/internal/log"
	"tvrename/pkg/types"
)

// ExtensionCount is one row of the frequency table
type ExtensionCount struct {
	Ext   string
	Count int
}

// CountExtensions tallies the extensions of non-directory entries, in the
// order each extension is first seen. Entries without an extension are
// not counted.
func CountExtensions(entries []types.Entry) []ExtensionCount {
	index := make(map[string]int)
	var counts []ExtensionCount
	for _, entry := range entries {
		if entry.IsDir || entry.Ext == "" {
			continue
		}
		i, ok := index[entry.Ext]
		if !ok {
			i = len(counts)
			index[entry.Ext] = i
			counts = append(counts, ExtensionCount{Ext: entry.Ext})
		}
		counts[i].Count++
	}
	return counts
}

// DetectExtension returns the most frequent extension among files, or ""
// when no file has one. Ties go to the extension seen first in entry
// order.
func DetectExtension(entries []types.Entry) string {
	var best ExtensionCount
	for _, c := range CountExtensions(entries) {
		log.Debugf("Extension %q seen %d times", c.Ext, c.Count)
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Ext
}
