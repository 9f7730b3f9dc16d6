// Package census reconciles monthly hospital census workbooks into
// per-month totals.
package census

import "log/slog"

// Labels that identify the total census row on a monthly sheet.
const (
	LabelBSLMCTotal   = "BSLMC Total Census"
	LabelEPICBedCount = "Census (from EPIC)Total Bed Count"
)

// Options configures aggregation behavior.
type Options struct {
	// Patterns are the label texts searched for in the label column.
	// Matching is case-insensitive substring containment.
	// If empty, defaults to LabelBSLMCTotal and LabelEPICBedCount.
	Patterns []string
	// MaxSheets caps the number of sheets consulted. Defaults to 12.
	MaxSheets int
	// LabelColumn is the 0-based column holding row labels. Defaults to 0.
	LabelColumn int
	// FirstValueColumn is the 0-based column of day 1. Defaults to 2.
	FirstValueColumn int
	// Logger receives per-sheet diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default aggregation options.
func DefaultOptions() Options {
	return Options{
		Patterns:         []string{LabelBSLMCTotal, LabelEPICBedCount},
		MaxSheets:        len(Months),
		LabelColumn:      0,
		FirstValueColumn: 2,
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if len(o.Patterns) == 0 {
		o.Patterns = def.Patterns
	}
	if o.MaxSheets <= 0 || o.MaxSheets > len(Months) {
		o.MaxSheets = def.MaxSheets
	}
	if o.LabelColumn < 0 {
		o.LabelColumn = def.LabelColumn
	}
	if o.FirstValueColumn <= 0 {
		o.FirstValueColumn = def.FirstValueColumn
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
