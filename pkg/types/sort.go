package types

// SortDirection orders selected entries by path
type SortDirection int

const (
	// Ascending sorts paths from smallest to largest
	Ascending SortDirection = iota
	// Descending sorts paths from largest to smallest
	Descending
)

// SortDirectionFromMode maps the command-line sort value: 1 is ascending,
// every other value is descending.
func SortDirectionFromMode(mode int) SortDirection {
	if mode == 1 {
		return Ascending
	}
	return Descending
}

func (d SortDirection) String() string {
	if d == Ascending {
		return "ascending"
	}
	return "descending"
}
