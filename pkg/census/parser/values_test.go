package parser

import (
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"123", 123, true},
		{"123.45", 123.45, true},
		{"-100", -100, true},
		{" 42 ", 42, true},
		{"1e3", 1000, true},
		{"0", 0, true},
		{"hello", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,234", 0, false},
	}

	for _, tt := range tests {
		result, ok := ParseNumber(tt.input)
		if ok != tt.ok || result != tt.expected {
			t.Errorf("ParseNumber(%q) = (%v, %v), expected (%v, %v)",
				tt.input, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestValidDays(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		from     int
		expected []float64
	}{
		{"drops absent and zero", []string{"BSLMC Total Census", "x", "10", "0", "abc", "", "5"}, 2, []float64{10, 5}},
		{"label columns ignored", []string{"12", "13", "1"}, 2, []float64{1}},
		{"row shorter than first value column", []string{"BSLMC Total Census"}, 2, nil},
		{"all zero", []string{"label", "", "0", "0.0", "0"}, 2, nil},
		{"negative from", []string{"3", "4"}, -1, []float64{3, 4}},
	}

	for _, tt := range tests {
		got := ValidDays(tt.row, tt.from)
		if len(got) != len(tt.expected) {
			t.Errorf("%s: ValidDays = %v, expected %v", tt.name, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%s: ValidDays = %v, expected %v", tt.name, got, tt.expected)
				break
			}
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, expected 0", got)
	}
	if got := Sum([]float64{1.5, 2.5, 6}); got != 10 {
		t.Errorf("Sum = %v, expected 10", got)
	}
}
