// Package main provides the CLI entry point for xlcmp.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp"
	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/output"
)

var (
	outputPath string
	format     string
	refCol     string
	looseTypes bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlcmp [file1.xlsx] [file2.xlsx]",
		Short: "Compare two Excel workbooks cell by cell",
		Long: `xlcmp compares two Excel workbooks cell-by-cell and reports every
difference with its column header and reference-column context.
Results are grouped by sheet and sorted by row, then column.`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Export file path (default: differences.<format>)")
	rootCmd.Flags().StringVar(&format, "format", "", "Export format: csv or xlsx")
	rootCmd.Flags().StringVar(&refCol, "ref-col", "D", "Reference column attached to every difference")
	rootCmd.Flags().BoolVar(&looseTypes, "loose-types", false, "Treat a number and its text rendering as equal")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupEnvironment()

	path1, path2 := args[0], args[1]
	for _, path := range []string{path1, path2} {
		if err := validateInput(path); err != nil {
			return err
		}
	}
	if samePath(path1, path2) {
		return xlcmp.ErrSameFile
	}

	refColumn, err := excelize.ColumnNameToNumber(strings.ToUpper(refCol))
	if err != nil {
		return fmt.Errorf("invalid reference column %q: %w", refCol, err)
	}

	opts := xlcmp.Options{
		ReferenceColumn: refColumn,
		LooseTypes:      looseTypes,
	}

	fmt.Printf("Comparing %q and %q...\n\n", filepath.Base(path1), filepath.Base(path2))

	start := time.Now()
	report, err := xlcmp.Compare(path1, path2, opts)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	log.Debug().
		Int("differences", len(report.Differences)).
		Int("missing_sheets", len(report.MissingSheets)).
		Dur("elapsed", time.Since(start)).
		Msg("Comparison complete")

	output.WriteConsole(os.Stdout, report)

	if format == "" && outputPath == "" {
		return nil
	}
	return export(report)
}

// export writes the report to the requested file. The format defaults from
// the output extension, falling back to xlsx like the styled default.
func export(report *models.Report) error {
	exportFormat := format
	if exportFormat == "" {
		if strings.EqualFold(filepath.Ext(outputPath), ".csv") {
			exportFormat = "csv"
		} else {
			exportFormat = "xlsx"
		}
	}

	path := outputPath
	if path == "" {
		path = "differences." + exportFormat
	}

	switch exportFormat {
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		if err := output.WriteCSV(f, report); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	case "xlsx":
		if err := output.WriteExcel(path, report); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
	default:
		return fmt.Errorf("invalid format: %s (must be csv or xlsx)", exportFormat)
	}

	log.Info().Str("path", path).Str("format", exportFormat).Msg("Differences exported")
	fmt.Printf("Differences exported to %q\n", path)
	return nil
}

// validateInput checks the path exists and looks like an Excel workbook.
func validateInput(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", xlcmp.ErrFileNotFound, path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return nil
	case ".xls":
		return fmt.Errorf("%w: %s (legacy .xls is not supported, convert to .xlsx first)", xlcmp.ErrInvalidFormat, path)
	default:
		return fmt.Errorf("%w: %s (must be .xlsx or .xlsm)", xlcmp.ErrInvalidFormat, path)
	}
}

// samePath reports whether both arguments resolve to the same file.
func samePath(path1, path2 string) bool {
	abs1, err1 := filepath.Abs(path1)
	abs2, err2 := filepath.Abs(path2)
	if err1 != nil || err2 != nil {
		return path1 == path2
	}
	return abs1 == abs2
}
