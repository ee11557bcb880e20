package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	return path
}

func TestValidateInput(t *testing.T) {
	dir := t.TempDir()

	if err := validateInput(touch(t, filepath.Join(dir, "a.xlsx"))); err != nil {
		t.Errorf("xlsx should validate, got %v", err)
	}
	if err := validateInput(touch(t, filepath.Join(dir, "a.xlsm"))); err != nil {
		t.Errorf("xlsm should validate, got %v", err)
	}

	err := validateInput(filepath.Join(dir, "missing.xlsx"))
	if !errors.Is(err, xlcmp.ErrFileNotFound) {
		t.Errorf("missing file: expected ErrFileNotFound, got %v", err)
	}

	err = validateInput(touch(t, filepath.Join(dir, "a.csv")))
	if !errors.Is(err, xlcmp.ErrInvalidFormat) {
		t.Errorf("csv: expected ErrInvalidFormat, got %v", err)
	}
}

// Legacy .xls is rejected up front with its own message instead of
// failing later inside the workbook parser.
func TestValidateInputLegacyXLS(t *testing.T) {
	err := validateInput(touch(t, filepath.Join(t.TempDir(), "old.xls")))
	if !errors.Is(err, xlcmp.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "legacy .xls") {
		t.Errorf("expected legacy-format message, got %q", err.Error())
	}
}

func TestSamePath(t *testing.T) {
	if !samePath("a.xlsx", "./a.xlsx") {
		t.Error("relative spellings of the same file should match")
	}
	if samePath("a.xlsx", "b.xlsx") {
		t.Error("different files should not match")
	}
}
