package output

import (
	"strings"
	"testing"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		File1: "one.xlsx",
		File2: "two.xlsx",
		Differences: []models.Difference{
			{
				Sheet:   "Data",
				Cell:    models.CellAddress{Row: 2, Col: 2},
				Value1:  models.Number(100),
				Value2:  models.Number(105),
				Header1: models.Text("Amount"),
				Header2: models.Text("Amount"),
				Ref1:    models.Text("X"),
				Ref2:    models.Text("X"),
			},
			{
				Sheet:  "Data",
				Cell:   models.CellAddress{Row: 3, Col: 1},
				Value1: models.Empty(),
				Value2: models.Text("added"),
			},
			{
				Sheet:  "Notes",
				Cell:   models.CellAddress{Row: 1, Col: 1},
				Value1: models.ErrorCode(models.ErrorRef),
				Value2: models.Number(0),
			},
		},
		MissingSheets: []models.MissingSheet{{Name: "Summary", PresentIn: 1}},
	}
}

func TestWriteConsole(t *testing.T) {
	var sb strings.Builder
	WriteConsole(&sb, sampleReport())
	out := sb.String()

	for _, want := range []string{
		"Sheets in File 1 but not in File 2: Summary",
		"Found 3 difference(s):",
		`Sheet: "Data" (2 difference(s))`,
		`Sheet: "Notes" (1 difference(s))`,
		"Cell: B2",
		"File 1: 100",
		"File 2: 105",
		"File 1: <empty>",
		`File 2: "added"`,
		"File 1: #REF!",
		"Total differences: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q\n%s", want, out)
		}
	}
}

func TestWriteConsoleIdentical(t *testing.T) {
	var sb strings.Builder
	WriteConsole(&sb, &models.Report{})
	out := sb.String()

	if !strings.Contains(out, "No differences found!") {
		t.Errorf("expected identical message, got:\n%s", out)
	}
	if strings.Contains(out, "Total differences") {
		t.Errorf("identical report should not print totals:\n%s", out)
	}
}
