// Package differ implements the cell-level comparison engine.
package differ

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xlcmp/xlcmp-go/pkg/xlcmp/models"
)

// errorTokens maps recognized spreadsheet error tokens to their kinds.
var errorTokens = map[string]models.ErrorKind{
	"#DIV/0!": models.ErrorDiv0,
	"#N/A":    models.ErrorNA,
	"#NAME?":  models.ErrorName,
	"#NULL!":  models.ErrorNull,
	"#NUM!":   models.ErrorNum,
	"#REF!":   models.ErrorRef,
	"#VALUE!": models.ErrorValue,
}

// Normalize maps a raw cell value to its canonical comparable form.
// It is total: every input, including nil and unrecognized error-like
// strings, yields a valid NormalizedValue.
func Normalize(raw any) models.NormalizedValue {
	switch v := raw.(type) {
	case nil:
		return models.Empty()
	case bool:
		return models.Boolean(v)
	case int:
		return models.Number(float64(v))
	case int64:
		return models.Number(float64(v))
	case float64:
		return models.Number(v)
	case string:
		return normalizeString(v)
	default:
		return models.Text(fmt.Sprint(v))
	}
}

// normalizeString classifies a string cell value. Error tokens are matched
// after trimming surrounding whitespace. Any other string stays Text:
// typing numeric cells is the reading layer's job, so a textual "5" and
// the number 5 remain distinct under strict equality.
func normalizeString(s string) models.NormalizedValue {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.Empty()
	}
	if kind, ok := errorTokens[trimmed]; ok {
		return models.ErrorCode(kind)
	}
	if strings.HasPrefix(trimmed, "#") {
		return models.ErrorCode(models.ErrorOther)
	}
	return models.Text(s)
}

// valuesEqual applies the comparison policy. Strict equality requires the
// same variant and payload. With looseTypes, a number and the text that
// parses to the same number compare equal.
func valuesEqual(a, b models.NormalizedValue, looseTypes bool) bool {
	if a.Equal(b) {
		return true
	}
	if !looseTypes {
		return false
	}
	if a.Kind == models.KindNumber && b.Kind == models.KindText {
		a, b = b, a
	}
	if a.Kind == models.KindText && b.Kind == models.KindNumber {
		if f, err := strconv.ParseFloat(strings.TrimSpace(a.Str), 64); err == nil {
			return f == b.Num
		}
	}
	return false
}
