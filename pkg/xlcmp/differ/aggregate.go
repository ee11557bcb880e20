package differ

import (
	"sort"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

// Aggregate orders per-sheet differences into the final report. Sheets
// appear in the given order (the aligner's common-sheet order); a sheet
// with no differences contributes nothing. Within a sheet, differences are
// sorted ascending by (row, column). The missing-sheet list passes through
// unchanged.
func Aggregate(sheetOrder []string, bySheet map[string][]models.Difference, missing []models.MissingSheet) *models.Report {
	var ordered []models.Difference
	for _, name := range sheetOrder {
		diffs := bySheet[name]
		if len(diffs) == 0 {
			continue
		}
		sorted := make([]models.Difference, len(diffs))
		copy(sorted, diffs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Cell.Less(sorted[j].Cell)
		})
		ordered = append(ordered, sorted...)
	}

	return &models.Report{
		Differences:   ordered,
		MissingSheets: missing,
	}
}
