// Package models defines data structures for workbook comparison.
package models

import "strconv"

// ValueKind identifies the variant of a NormalizedValue.
type ValueKind string

const (
	// KindEmpty represents an absent or blank cell.
	KindEmpty ValueKind = "empty"
	// KindNumber represents a numeric cell value.
	KindNumber ValueKind = "number"
	// KindText represents a textual cell value.
	KindText ValueKind = "text"
	// KindBoolean represents a boolean cell value.
	KindBoolean ValueKind = "boolean"
	// KindError represents a spreadsheet error code.
	KindError ValueKind = "error"
)

// ErrorKind identifies a spreadsheet error code.
type ErrorKind string

const (
	ErrorDiv0  ErrorKind = "DIV0"
	ErrorNA    ErrorKind = "NA"
	ErrorName  ErrorKind = "NAME"
	ErrorNull  ErrorKind = "NULL"
	ErrorNum   ErrorKind = "NUM"
	ErrorRef   ErrorKind = "REF"
	ErrorValue ErrorKind = "VALUE"
	// ErrorOther covers error-like values outside the recognized token set.
	ErrorOther ErrorKind = "OTHER"
)

// Token returns the spreadsheet token for the error kind, e.g. "#DIV/0!".
func (k ErrorKind) Token() string {
	switch k {
	case ErrorDiv0:
		return "#DIV/0!"
	case ErrorNA:
		return "#N/A"
	case ErrorName:
		return "#NAME?"
	case ErrorNull:
		return "#NULL!"
	case ErrorNum:
		return "#NUM!"
	case ErrorRef:
		return "#REF!"
	case ErrorValue:
		return "#VALUE!"
	default:
		return "#ERROR!"
	}
}

// NormalizedValue is the canonical comparable form of a raw cell value.
// It is a tagged variant: Kind selects which payload field is meaningful.
type NormalizedValue struct {
	Kind ValueKind `json:"kind"`
	// Num holds the payload for KindNumber. Integral values are stored
	// exactly, so a cell read as int and the same cell read as float
	// compare equal.
	Num float64 `json:"num,omitempty"`
	// Str holds the payload for KindText.
	Str string `json:"str,omitempty"`
	// Flag holds the payload for KindBoolean.
	Flag bool `json:"flag,omitempty"`
	// Code holds the payload for KindError.
	Code ErrorKind `json:"code,omitempty"`
}

// Empty returns the NormalizedValue for an absent or blank cell.
func Empty() NormalizedValue {
	return NormalizedValue{Kind: KindEmpty}
}

// Number returns a numeric NormalizedValue.
func Number(f float64) NormalizedValue {
	return NormalizedValue{Kind: KindNumber, Num: f}
}

// Text returns a textual NormalizedValue.
func Text(s string) NormalizedValue {
	return NormalizedValue{Kind: KindText, Str: s}
}

// Boolean returns a boolean NormalizedValue.
func Boolean(b bool) NormalizedValue {
	return NormalizedValue{Kind: KindBoolean, Flag: b}
}

// ErrorCode returns a NormalizedValue for a spreadsheet error code.
func ErrorCode(k ErrorKind) NormalizedValue {
	return NormalizedValue{Kind: KindError, Code: k}
}

// IsEmpty reports whether the value is the Empty variant.
func (v NormalizedValue) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// Equal reports whether two normalized values have the same variant and,
// where applicable, the same payload.
func (v NormalizedValue) Equal(other NormalizedValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == other.Num
	case KindText:
		return v.Str == other.Str
	case KindBoolean:
		return v.Flag == other.Flag
	case KindError:
		return v.Code == other.Code
	default:
		return true
	}
}

// String renders the value the way a spreadsheet cell would display it.
// Empty renders as the empty string.
func (v NormalizedValue) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Str
	case KindBoolean:
		if v.Flag {
			return "TRUE"
		}
		return "FALSE"
	case KindError:
		return v.Code.Token()
	default:
		return ""
	}
}
