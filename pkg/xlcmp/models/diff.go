package models

// Difference records a single cell-level mismatch between the two files,
// together with the positional context a reviewer needs.
type Difference struct {
	// Sheet is the sheet name the difference was found in.
	Sheet string `json:"sheet"`
	// Cell is the position of the differing cell.
	Cell CellAddress `json:"cell"`
	// Value1 and Value2 are the normalized cell values from each file.
	Value1 NormalizedValue `json:"value1"`
	Value2 NormalizedValue `json:"value2"`
	// Header1 and Header2 are the normalized row-1 values of the differing
	// cell's column in each file.
	Header1 NormalizedValue `json:"header1"`
	Header2 NormalizedValue `json:"header2"`
	// Ref1 and Ref2 are the normalized reference-column values of the
	// differing cell's row in each file.
	Ref1 NormalizedValue `json:"ref1"`
	Ref2 NormalizedValue `json:"ref2"`
}

// MissingSheet records a sheet present in exactly one of the two files.
type MissingSheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// PresentIn is 1 or 2, identifying the file that has the sheet.
	PresentIn int `json:"present_in"`
}

// Report is the ordered outcome of a workbook comparison.
// Differences are grouped by sheet in file-1 sheet order and sorted by
// (row, column) within each sheet.
type Report struct {
	// File1 and File2 are the compared workbook file names (no path).
	File1 string `json:"file1"`
	File2 string `json:"file2"`
	// Differences is the full ordered difference list.
	Differences []Difference `json:"differences"`
	// MissingSheets lists sheets present in only one file.
	MissingSheets []MissingSheet `json:"missing_sheets,omitempty"`
}

// Identical reports whether no differences and no missing sheets were found.
func (r *Report) Identical() bool {
	return len(r.Differences) == 0 && len(r.MissingSheets) == 0
}
