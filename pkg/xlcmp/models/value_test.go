package models

import "testing"

func TestNormalizedValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  NormalizedValue
		equal bool
	}{
		{"empty vs empty", Empty(), Empty(), true},
		{"same number", Number(1.5), Number(1.5), true},
		{"different number", Number(1.5), Number(2), false},
		{"same text", Text("a"), Text("a"), true},
		{"different text", Text("a"), Text("a "), false},
		{"same bool", Boolean(true), Boolean(true), true},
		{"different bool", Boolean(true), Boolean(false), false},
		{"same error", ErrorCode(ErrorNA), ErrorCode(ErrorNA), true},
		{"different error", ErrorCode(ErrorNA), ErrorCode(ErrorRef), false},
		{"cross variant", Number(0), Empty(), false},
		{"number vs its text", Number(5), Text("5"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal(%+v, %+v) = %v, expected %v", tt.a, tt.b, got, tt.equal)
			}
			if back := tt.b.Equal(tt.a); back != tt.equal {
				t.Errorf("Equal not symmetric for %+v / %+v", tt.a, tt.b)
			}
		})
	}
}

func TestNormalizedValueString(t *testing.T) {
	tests := []struct {
		value    NormalizedValue
		expected string
	}{
		{Empty(), ""},
		{Number(100), "100"},
		{Number(1.25), "1.25"},
		{Text("hi"), "hi"},
		{Boolean(true), "TRUE"},
		{Boolean(false), "FALSE"},
		{ErrorCode(ErrorDiv0), "#DIV/0!"},
		{ErrorCode(ErrorOther), "#ERROR!"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("String(%+v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}

func TestCellAddressA1(t *testing.T) {
	tests := []struct {
		addr    CellAddress
		a1      string
		colName string
	}{
		{CellAddress{Row: 1, Col: 1}, "A1", "A"},
		{CellAddress{Row: 2, Col: 2}, "B2", "B"},
		{CellAddress{Row: 10, Col: 27}, "AA10", "AA"},
	}

	for _, tt := range tests {
		if got := tt.addr.A1(); got != tt.a1 {
			t.Errorf("A1(%+v) = %q, expected %q", tt.addr, got, tt.a1)
		}
		if got := tt.addr.ColumnName(); got != tt.colName {
			t.Errorf("ColumnName(%+v) = %q, expected %q", tt.addr, got, tt.colName)
		}
	}
}

func TestCellAddressLess(t *testing.T) {
	a := CellAddress{Row: 1, Col: 5}
	b := CellAddress{Row: 2, Col: 1}
	if !a.Less(b) {
		t.Error("row orders before column")
	}
	c := CellAddress{Row: 2, Col: 2}
	if !b.Less(c) {
		t.Error("same row orders by column")
	}
	if c.Less(c) {
		t.Error("address is not less than itself")
	}
}
