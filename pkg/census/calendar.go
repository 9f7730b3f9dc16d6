package census

import "time"

// Months lists the calendar months in sheet order: the sheet at index i
// reports Months[i].
var Months = [...]time.Month{
	time.January, time.February, time.March, time.April,
	time.May, time.June, time.July, time.August,
	time.September, time.October, time.November, time.December,
}

// IsLeap applies the simplified leap rule: every year divisible by 4.
// Century years are not special-cased, so 1900 counts as a leap year.
func IsLeap(year int) bool {
	return year%4 == 0
}

// DaysIn returns the expected number of days of month in year.
func DaysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}
