package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

// exportHeader is the column set shared by the CSV and Excel exporters.
var exportHeader = []string{
	"Sheet",
	"Cell",
	"Ref Value (File 1)",
	"Ref Value (File 2)",
	"Column",
	"Column Header (File 1)",
	"Column Header (File 2)",
	"File 1 Value",
	"File 2 Value",
}

// WriteCSV writes the report as a delimited file: one row per difference in
// report order, then a missing-sheets section when any sheet is one-sided.
func WriteCSV(w io.Writer, report *models.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, d := range report.Differences {
		if err := cw.Write(exportRow(d)); err != nil {
			return err
		}
	}

	if len(report.MissingSheets) > 0 {
		if err := cw.Write([]string{}); err != nil {
			return err
		}
		if err := cw.Write([]string{"Missing Sheet", "Present In File"}); err != nil {
			return err
		}
		for _, m := range report.MissingSheets {
			if err := cw.Write([]string{m.Name, strconv.Itoa(m.PresentIn)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportRow renders a difference as the shared export column set.
func exportRow(d models.Difference) []string {
	return []string{
		d.Sheet,
		d.Cell.A1(),
		d.Ref1.String(),
		d.Ref2.String(),
		d.Cell.ColumnName(),
		d.Header1.String(),
		d.Header2.String(),
		d.Value1.String(),
		d.Value2.String(),
	}
}
