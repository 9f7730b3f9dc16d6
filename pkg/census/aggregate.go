package census

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/ukaji3/census-go/pkg/census/models"
	"github.com/ukaji3/census-go/pkg/census/parser"
)

// Workbook is a read-only source of monthly census sheets.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Grid loads a sheet as raw cell text, "" meaning absent.
	Grid(sheet string) ([][]string, error)
}

// sheetOutcome is the result of processing one sheet: exactly one of
// result and skip is set.
type sheetOutcome struct {
	result *models.MonthResult
	skip   *models.SheetSkip
}

// Aggregate reconciles the census row of each monthly sheet in wb against
// the calendar of year. Sheets map to months by position. The year is
// validated before wb is touched.
func Aggregate(wb Workbook, year int, opts Options) (*models.Report, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	re, err := parser.LabelPattern(opts.Patterns)
	if err != nil {
		return nil, fmt.Errorf("compile label patterns: %w", err)
	}
	logger := opts.Logger.With("year", year)

	report := &models.Report{
		Year:    year,
		Results: []models.MonthResult{},
	}

	names := wb.SheetNames()
	for i, name := range names {
		if i >= opts.MaxSheets {
			logger.Debug("ignoring sheets beyond the last month", "ignored", len(names)-i)
			break
		}

		out := processSheet(wb, i, name, year, re, opts)
		if out.skip != nil {
			logger.Warn("skipping sheet",
				"sheet", name,
				"index", i,
				"reason", out.skip.Reason.String(),
				"detail", out.skip.Detail,
			)
			report.Skipped = append(report.Skipped, *out.skip)
			continue
		}
		report.Results = append(report.Results, *out.result)
	}

	if len(report.Results) == 0 {
		return nil, newNoDataError(year, report.Skipped)
	}
	return report, nil
}

// processSheet loads and reconciles a single sheet. Faults while loading or
// matching are contained here and turned into a skip.
func processSheet(wb Workbook, index int, name string, year int, re *regexp.Regexp, opts Options) (out sheetOutcome) {
	skip := func(reason models.SkipReason, err error) sheetOutcome {
		s := &models.SheetSkip{Index: index, Sheet: name, Reason: reason}
		if err != nil {
			s.Detail = err.Error()
		}
		return sheetOutcome{skip: s}
	}

	defer func() {
		if r := recover(); r != nil {
			out = skip(models.SkipMatchError, fmt.Errorf("%v", r))
		}
	}()

	grid, err := wb.Grid(name)
	if err != nil {
		return skip(models.SkipReadError, err)
	}

	rows, cols := parser.GridBounds(grid)
	if rows == 0 || cols == 0 {
		return skip(models.SkipEmpty, nil)
	}

	rowIdx := parser.FindRow(grid, opts.LabelColumn, re)
	if rowIdx < 0 {
		return skip(models.SkipNoMatch, nil)
	}

	days := parser.ValidDays(grid[rowIdx], opts.FirstValueColumn)
	month := Months[index]
	expected := DaysIn(month, year)
	total, ok := Reconcile(days, expected)
	if !ok {
		return skip(models.SkipNoData, nil)
	}

	opts.Logger.Debug("month reconciled",
		"sheet", name,
		"month", month.String(),
		"row", rowIdx,
		"days_with_data", len(days),
		"expected_days", expected,
		"total", total,
	)

	return sheetOutcome{result: &models.MonthResult{
		Year:  year,
		Month: month.String(),
		Value: total,
	}}
}

// Reconcile turns the valid daily readings of a month into a monthly total.
// A partial month is extrapolated linearly to expectedDays; a full (or
// over-full) month is summed as is. ok is false when days is empty.
func Reconcile(days []float64, expectedDays int) (total float64, ok bool) {
	n := len(days)
	if n == 0 {
		return 0, false
	}

	total = parser.Sum(days)
	if n < expectedDays {
		total = total / float64(n) * float64(expectedDays)
	}
	return Round2(total), true
}

// Round2 rounds v to 2 decimal places from its exact binary value, ties
// to even.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
