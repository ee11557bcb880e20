// Package loader reads Excel workbooks into in-memory sheet grids.
package loader

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

// Workbook holds the fully loaded sheet grids of a single file.
type Workbook struct {
	// Name is the workbook file name (no path).
	Name string
	// SheetOrder lists sheet names in workbook order.
	SheetOrder []string
	// Sheets maps sheet name to its populated-cell grid.
	Sheets map[string]*models.SheetGrid
}

// Load reads every sheet of a workbook into populated-cell grids.
// Comparison runs entirely against the returned structure, so the file is
// closed before Load returns.
func Load(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	wb := &Workbook{
		Name:   filepath.Base(path),
		Sheets: make(map[string]*models.SheetGrid),
	}
	for _, sheetName := range f.GetSheetList() {
		grid, err := loadSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		wb.SheetOrder = append(wb.SheetOrder, sheetName)
		wb.Sheets[sheetName] = grid
	}
	return wb, nil
}

// loadSheet extracts the non-empty cells of one sheet.
func loadSheet(f *excelize.File, sheetName string) (*models.SheetGrid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := models.NewSheetGrid(sheetName)
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			grid.Set(rowIdx+1, colIdx+1, typedValue(f, sheetName, cellName, cellValue))
		}
	}
	return grid, nil
}

// typedValue converts a raw cell string to the Go type the cell is stored
// as. String-typed cells stay strings so a textual "5" is distinguishable
// from the number 5; boolean cells become bool; everything else goes
// through the numeric parse.
func typedValue(f *excelize.File, sheetName, cellName, raw string) any {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return parseValue(raw)
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return raw
	case excelize.CellTypeBool:
		return raw == "TRUE"
	default:
		return parseValue(raw)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
