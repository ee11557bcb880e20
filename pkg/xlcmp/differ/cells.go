package differ

import (
	"sort"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

// RawDiff pairs a cell address with its normalized values from each file.
// It carries no context yet; Enrich attaches header and reference values.
type RawDiff struct {
	Cell   models.CellAddress
	Value1 models.NormalizedValue
	Value2 models.NormalizedValue
}

// DiffSheet walks the union of populated cells in two same-named sheets and
// returns one RawDiff per address whose normalized values differ. A cell
// populated in only one sheet reads as Empty on the other side, so
// additions and removals are reported, not skipped. The walk is in
// ascending (row, column) order, so output is deterministic.
func DiffSheet(sheet1, sheet2 *models.SheetGrid, looseTypes bool) []RawDiff {
	addrs := unionAddresses(sheet1, sheet2)

	var diffs []RawDiff
	for _, addr := range addrs {
		v1 := Normalize(sheet1.At(addr.Row, addr.Col))
		v2 := Normalize(sheet2.At(addr.Row, addr.Col))
		if valuesEqual(v1, v2, looseTypes) {
			continue
		}
		diffs = append(diffs, RawDiff{Cell: addr, Value1: v1, Value2: v2})
	}
	return diffs
}

// unionAddresses collects every populated address of either sheet,
// sorted by (row, column).
func unionAddresses(sheet1, sheet2 *models.SheetGrid) []models.CellAddress {
	seen := make(map[models.CellAddress]struct{})
	if sheet1 != nil {
		for addr := range sheet1.Cells {
			seen[addr] = struct{}{}
		}
	}
	if sheet2 != nil {
		for addr := range sheet2.Cells {
			seen[addr] = struct{}{}
		}
	}

	addrs := make([]models.CellAddress, 0, len(seen))
	for addr := range seen {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
	return addrs
}
