package parser

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ParseNumber coerces a raw cell value to a number.
// Empty cells, non-numeric text, NaN and infinities report ok=false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ValidDays coerces row cells from column index from onward and returns
// the values that are present and non-zero. A zero reading is treated as
// a missing-data placeholder, not a genuine zero census.
func ValidDays(row []string, from int) []float64 {
	if from < 0 {
		from = 0
	}
	if from >= len(row) {
		return nil
	}

	var days []float64
	for _, cell := range row[from:] {
		v, ok := ParseNumber(cell)
		if !ok || v == 0 {
			continue
		}
		days = append(days, v)
	}
	return days
}

// Sum adds up values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
