package organize

import "tvrename/pkg/types"

// Renamer defines the interface for the rename stage of a run.
// This allows for dependency injection in tests and other parts of the application
type Renamer interface {
	// OnResult registers a callback invoked after each entry is handled
	OnResult(fn func(types.RenameResult))

	// RenameAll numbers the entries in order and renames (or previews) each
	RenameAll(entries []types.Entry) []types.RenameResult
}

// Ensure Engine implements the Renamer interface
var _ Renamer = (*Engine)(nil)
