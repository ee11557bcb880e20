// Package xlcmp compares two Excel workbooks cell by cell.
package xlcmp

// DefaultReferenceColumn is column D, the column whose value is attached
// to every difference for row context.
const DefaultReferenceColumn = 4

// Options configures comparison behavior.
type Options struct {
	// ReferenceColumn is the 1-based column whose value is attached to
	// every reported difference in the same row. Zero means
	// DefaultReferenceColumn.
	ReferenceColumn int
	// LooseTypes treats a numeric value and the text that parses to the
	// same number as equal. Default is strict: type and value both
	// participate in equality.
	LooseTypes bool
}

// DefaultOptions returns default comparison options.
func DefaultOptions() Options {
	return Options{}
}

// RefColumn returns the effective reference column.
func (o Options) RefColumn() int {
	if o.ReferenceColumn > 0 {
		return o.ReferenceColumn
	}
	return DefaultReferenceColumn
}
