package output

import (
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, sampleReport()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	reader := csv.NewReader(strings.NewReader(sb.String()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if !reflect.DeepEqual(records[0], exportHeader) {
		t.Errorf("header = %v", records[0])
	}

	wantFirst := []string{"Data", "B2", "X", "X", "B", "Amount", "Amount", "100", "105"}
	if !reflect.DeepEqual(records[1], wantFirst) {
		t.Errorf("first row = %v, expected %v", records[1], wantFirst)
	}

	// Empty side renders as an empty field.
	if records[2][7] != "" || records[2][8] != "added" {
		t.Errorf("one-sided row = %v", records[2])
	}

	// Missing sheets follow the difference rows.
	last := records[len(records)-1]
	if last[0] != "Summary" || last[1] != "1" {
		t.Errorf("missing-sheet row = %v", last)
	}
}

func TestWriteCSVNoMissingSection(t *testing.T) {
	report := sampleReport()
	report.MissingSheets = nil

	var sb strings.Builder
	if err := WriteCSV(&sb, report); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if strings.Contains(sb.String(), "Missing Sheet") {
		t.Errorf("unexpected missing-sheet section:\n%s", sb.String())
	}
}
