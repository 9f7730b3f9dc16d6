package models

// SkipReason classifies why a sheet produced no MonthResult.
type SkipReason string

const (
	// SkipEmpty means the sheet has no rows or no columns.
	SkipEmpty SkipReason = "empty"
	// SkipNoMatch means no label cell matched a census pattern.
	SkipNoMatch SkipReason = "no_match"
	// SkipReadError means the sheet could not be loaded as a grid.
	SkipReadError SkipReason = "read_error"
	// SkipMatchError means matching or coercion failed unexpectedly.
	SkipMatchError SkipReason = "match_error"
	// SkipNoData means the census row had no non-zero numeric days.
	SkipNoData SkipReason = "no_data"
)

// String returns the human-readable diagnostic for the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipEmpty:
		return "empty or no columns"
	case SkipNoMatch:
		return "no target census row found"
	case SkipReadError:
		return "error reading sheet"
	case SkipMatchError:
		return "error finding target row"
	case SkipNoData:
		return "no valid daily values"
	}
	return string(r)
}

// SheetSkip records a sheet that was dropped from the results.
type SheetSkip struct {
	// Index is the 0-based sheet position.
	Index int `json:"index"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Reason is the skip classification.
	Reason SkipReason `json:"reason"`
	// Detail carries the underlying error text, if any.
	Detail string `json:"detail,omitempty"`
}
