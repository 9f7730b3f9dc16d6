package models

// Report is the outcome of one aggregation run.
type Report struct {
	// Year is the target year.
	Year int `json:"year"`
	// Results holds one entry per contributing sheet, in sheet order.
	Results []MonthResult `json:"results"`
	// Skipped lists the sheets that contributed nothing.
	Skipped []SheetSkip `json:"skipped,omitempty"`
}
