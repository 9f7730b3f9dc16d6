package census

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, true}, // not a Gregorian leap year; the divisible-by-4 rule applies
		{2100, true},
		{1001, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.leap, IsLeap(tt.year), "year %d", tt.year)
	}
}

func TestDaysInFebruary(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		want := 28
		if year%4 == 0 {
			want = 29
		}
		if got := DaysIn(time.February, year); got != want {
			t.Fatalf("DaysIn(February, %d) = %d, want %d", year, got, want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	want := map[time.Month]int{
		time.January: 31, time.February: 28, time.March: 31, time.April: 30,
		time.May: 31, time.June: 30, time.July: 31, time.August: 31,
		time.September: 30, time.October: 31, time.November: 30, time.December: 31,
	}
	for month, days := range want {
		assert.Equal(t, days, DaysIn(month, 2023), month.String())
	}
}

func TestMonthsOrder(t *testing.T) {
	assert.Len(t, Months, 12)
	for i, m := range Months {
		assert.Equal(t, time.Month(i+1), m)
	}
}
