package models

import "github.com/xuri/excelize/v2"

// CellAddress identifies a cell position within a sheet (1-based).
type CellAddress struct {
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Col is the column index (1-based).
	Col int `json:"col"`
}

// A1 returns the Excel-style cell name, e.g. "B2".
func (a CellAddress) A1() string {
	name, err := excelize.CoordinatesToCellName(a.Col, a.Row)
	if err != nil {
		return ""
	}
	return name
}

// ColumnName returns the Excel-style column letter, e.g. "B".
func (a CellAddress) ColumnName() string {
	name, err := excelize.ColumnNumberToName(a.Col)
	if err != nil {
		return ""
	}
	return name
}

// Less orders addresses by row, then column.
func (a CellAddress) Less(other CellAddress) bool {
	if a.Row != other.Row {
		return a.Row < other.Row
	}
	return a.Col < other.Col
}

// SheetGrid holds the populated cells of a single sheet.
// Only non-empty cells appear in the map; reading any other address
// yields nil, which normalizes to Empty.
type SheetGrid struct {
	// Name is the sheet name.
	Name string
	// Cells maps populated addresses to raw cell values.
	Cells map[CellAddress]any
}

// NewSheetGrid returns an empty grid for the named sheet.
func NewSheetGrid(name string) *SheetGrid {
	return &SheetGrid{
		Name:  name,
		Cells: make(map[CellAddress]any),
	}
}

// Set records a raw value at the given 1-based position.
func (g *SheetGrid) Set(row, col int, value any) {
	g.Cells[CellAddress{Row: row, Col: col}] = value
}

// At returns the raw value at the given 1-based position, or nil when the
// cell is unpopulated. A nil grid reads as entirely unpopulated.
func (g *SheetGrid) At(row, col int) any {
	if g == nil {
		return nil
	}
	return g.Cells[CellAddress{Row: row, Col: col}]
}
