// Package models defines data structures for census aggregation.
package models

// MonthResult is the reconciled census total for one month.
type MonthResult struct {
	// Year is the target year of the run.
	Year int `json:"year"`
	// Month is the calendar month name (January..December).
	Month string `json:"month"`
	// Value is the reconciled total, rounded to 2 decimal places.
	Value float64 `json:"value"`
}

// Row returns the result as a summary workbook row.
func (r MonthResult) Row() []interface{} {
	return []interface{}{r.Year, r.Month, r.Value}
}
