package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

const (
	diffSheetName    = "Differences"
	missingSheetName = "Missing Sheets"
)

// columnWidths matches the export column set, first column to last.
var columnWidths = []float64{15, 12, 15, 15, 12, 20, 20, 20, 20}

// WriteExcel writes the report as a styled workbook: a "Differences" sheet
// with a bold white-on-blue header row, plus a "Missing Sheets" sheet when
// any sheet is one-sided.
func WriteExcel(path string, report *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", diffSheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
	})
	if err != nil {
		return err
	}

	if err := writeRow(f, diffSheetName, 1, exportHeader); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetCellStyle(diffSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, d := range report.Differences {
		if err := writeRow(f, diffSheetName, i+2, exportRow(d)); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(diffSheetName, col, col, width); err != nil {
			return err
		}
	}

	if len(report.MissingSheets) > 0 {
		if _, err := f.NewSheet(missingSheetName); err != nil {
			return err
		}
		if err := writeRow(f, missingSheetName, 1, []string{"Missing Sheet", "Present In File"}); err != nil {
			return err
		}
		if err := f.SetCellStyle(missingSheetName, "A1", "B1", headerStyle); err != nil {
			return err
		}
		for i, m := range report.MissingSheets {
			row := []string{m.Name, fmt.Sprintf("File %d", m.PresentIn)}
			if err := writeRow(f, missingSheetName, i+2, row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// writeRow sets a full row of string cells starting at column A.
func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
