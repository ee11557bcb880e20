// Package output renders comparison reports for review.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

const rule = 100

// WriteConsole prints the grouped comparison report in a human-readable
// layout: missing-sheet warnings first, then per-sheet difference blocks
// with counts. The report's ordering is preserved as-is.
func WriteConsole(w io.Writer, report *models.Report) {
	writeMissingSheets(w, report.MissingSheets)

	if len(report.Differences) == 0 {
		fmt.Fprintf(w, "No differences found! Both files are identical.\n")
		return
	}

	fmt.Fprintf(w, "Found %d difference(s):\n\n", len(report.Differences))
	fmt.Fprintln(w, strings.Repeat("=", rule))

	for _, group := range groupBySheet(report.Differences) {
		fmt.Fprintf(w, "\nSheet: %q (%d difference(s))\n", group.name, len(group.diffs))
		fmt.Fprintln(w, strings.Repeat("-", rule))
		for _, d := range group.diffs {
			fmt.Fprintf(w, "  Cell: %s\n", d.Cell.A1())
			fmt.Fprintf(w, "    File 1: %s\n", displayValue(d.Value1))
			fmt.Fprintf(w, "    File 2: %s\n", displayValue(d.Value2))
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintf(w, "\nTotal differences: %d\n", len(report.Differences))
}

func writeMissingSheets(w io.Writer, missing []models.MissingSheet) {
	var onlyIn1, onlyIn2 []string
	for _, m := range missing {
		if m.PresentIn == 1 {
			onlyIn1 = append(onlyIn1, m.Name)
		} else {
			onlyIn2 = append(onlyIn2, m.Name)
		}
	}
	if len(onlyIn1) > 0 {
		fmt.Fprintf(w, "Sheets in File 1 but not in File 2: %s\n\n", strings.Join(onlyIn1, ", "))
	}
	if len(onlyIn2) > 0 {
		fmt.Fprintf(w, "Sheets in File 2 but not in File 1: %s\n\n", strings.Join(onlyIn2, ", "))
	}
}

type sheetGroup struct {
	name  string
	diffs []models.Difference
}

// groupBySheet splits an ordered difference list into contiguous sheet
// groups, preserving the report's order.
func groupBySheet(diffs []models.Difference) []sheetGroup {
	var groups []sheetGroup
	for _, d := range diffs {
		if len(groups) == 0 || groups[len(groups)-1].name != d.Sheet {
			groups = append(groups, sheetGroup{name: d.Sheet})
		}
		groups[len(groups)-1].diffs = append(groups[len(groups)-1].diffs, d)
	}
	return groups
}

// displayValue renders a value for the console, marking blanks and quoting
// text so a trailing space stays visible.
func displayValue(v models.NormalizedValue) string {
	switch v.Kind {
	case models.KindEmpty:
		return "<empty>"
	case models.KindText:
		return strconv.Quote(v.Str)
	default:
		return v.String()
	}
}
