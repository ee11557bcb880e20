package xlcmp

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/differ"
	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/loader"
	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

// Compare loads both workbooks and reports every cell-level difference
// between them. Sheets present in only one file are listed as missing
// sheets and excluded from cell-level comparison.
func Compare(path1, path2 string, opts Options) (*models.Report, error) {
	wb1, err := loader.Load(path1)
	if err != nil {
		return nil, &CompareError{Path: path1, Err: err}
	}
	wb2, err := loader.Load(path2)
	if err != nil {
		return nil, &CompareError{Path: path2, Err: err}
	}
	return CompareWorkbooks(wb1, wb2, opts), nil
}

// CompareWorkbooks diffs two already-loaded workbooks. Sheets are
// independent, so they are diffed concurrently; the aggregator imposes the
// final deterministic order regardless of completion order.
func CompareWorkbooks(wb1, wb2 *loader.Workbook, opts Options) *models.Report {
	al := differ.Align(wb1.SheetOrder, wb2.SheetOrder)
	refCol := opts.RefColumn()

	bySheet := make(map[string][]models.Difference, len(al.Common))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, name := range al.Common {
		name := name
		g.Go(func() error {
			sheet1 := wb1.Sheets[name]
			sheet2 := wb2.Sheets[name]
			raws := differ.DiffSheet(sheet1, sheet2, opts.LooseTypes)
			if len(raws) == 0 {
				return nil
			}
			diffs := make([]models.Difference, 0, len(raws))
			for _, raw := range raws {
				diffs = append(diffs, differ.Enrich(raw, name, sheet1, sheet2, refCol))
			}
			mu.Lock()
			bySheet[name] = diffs
			mu.Unlock()
			return nil
		})
	}
	// per-sheet diffing is total, no error can surface here
	_ = g.Wait()

	report := differ.Aggregate(al.Common, bySheet, al.MissingSheets())
	report.File1 = wb1.Name
	report.File2 = wb2.Name
	return report
}
