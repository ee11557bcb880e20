package differ

import "github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"

// Enrich attaches header and reference-column context to a raw difference.
// The header is the row-1 value of the differing cell's column; the
// reference is the refCol value of the differing cell's row. Both are
// normalized like data cells, so an absent header or reference degrades to
// Empty rather than failing. When the differing cell sits in the reference
// column itself, the reference value is the differing value.
func Enrich(raw RawDiff, sheetName string, sheet1, sheet2 *models.SheetGrid, refCol int) models.Difference {
	return models.Difference{
		Sheet:   sheetName,
		Cell:    raw.Cell,
		Value1:  raw.Value1,
		Value2:  raw.Value2,
		Header1: Normalize(sheet1.At(1, raw.Cell.Col)),
		Header2: Normalize(sheet2.At(1, raw.Cell.Col)),
		Ref1:    Normalize(sheet1.At(raw.Cell.Row, refCol)),
		Ref2:    Normalize(sheet2.At(raw.Cell.Row, refCol)),
	}
}
