package types

// RenamePlan pairs a selected entry with its computed destination
type RenamePlan struct {
	Entry   Entry  `json:"entry"`
	Episode int    `json:"episode"`
	NewName string `json:"new_name"`
	NewPath string `json:"new_path"`
}

// RenameStatus is the outcome of one planned rename
type RenameStatus int

const (
	// Planned means the rename was only previewed (dry run)
	Planned RenameStatus = iota
	// Renamed means the file now carries its new name
	Renamed
	// Unchanged means the file already had its destination name
	Unchanged
	// Failed means the rename was attempted and the filesystem refused it
	Failed
)

func (s RenameStatus) String() string {
	switch s {
	case Planned:
		return "planned"
	case Renamed:
		return "renamed"
	case Unchanged:
		return "unchanged"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// RenameResult holds the outcome of a rename attempt for a single file
type RenameResult struct {
	RenamePlan
	Status RenameStatus `json:"status"`
	Error  error        `json:"error,omitempty"`
}

// Summary counts results by status
type Summary struct {
	Planned   int
	Renamed   int
	Unchanged int
	Failed    int
}

// Summarize tallies a result set
func Summarize(results []RenameResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case Planned:
			s.Planned++
		case Renamed:
			s.Renamed++
		case Unchanged:
			s.Unchanged++
		case Failed:
			s.Failed++
		}
	}
	return s
}
