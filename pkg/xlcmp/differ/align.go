package differ

import "github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"

// Alignment describes how the sheet sets of two workbooks line up.
type Alignment struct {
	// Common lists sheets present in both files, in file-1 order.
	Common []string
	// OnlyIn1 lists sheets present only in file 1, in file-1 order.
	OnlyIn1 []string
	// OnlyIn2 lists sheets present only in file 2, in file-2 order.
	OnlyIn2 []string
}

// Align determines the common sheet set and the sheets present in only
// one file. Common-sheet order follows file 1.
func Align(names1, names2 []string) Alignment {
	in1 := make(map[string]bool, len(names1))
	for _, n := range names1 {
		in1[n] = true
	}
	in2 := make(map[string]bool, len(names2))
	for _, n := range names2 {
		in2[n] = true
	}

	var al Alignment
	for _, n := range names1 {
		if in2[n] {
			al.Common = append(al.Common, n)
		} else {
			al.OnlyIn1 = append(al.OnlyIn1, n)
		}
	}
	for _, n := range names2 {
		if !in1[n] {
			al.OnlyIn2 = append(al.OnlyIn2, n)
		}
	}
	return al
}

// MissingSheets converts the one-sided sheet lists into report entries
// tagged with the file that has the sheet.
func (al Alignment) MissingSheets() []models.MissingSheet {
	var missing []models.MissingSheet
	for _, n := range al.OnlyIn1 {
		missing = append(missing, models.MissingSheet{Name: n, PresentIn: 1})
	}
	for _, n := range al.OnlyIn2 {
		missing = append(missing, models.MissingSheet{Name: n, PresentIn: 2})
	}
	return missing
}
