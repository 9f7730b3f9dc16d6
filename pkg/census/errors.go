package census

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/ukaji3/census-go/pkg/census/models"
)

// ErrInvalidYear indicates the target year is not a 4-digit integer.
var ErrInvalidYear = errors.New("invalid year")

// ErrNoData indicates no sheet produced a census result.
var ErrNoData = errors.New("no valid census data found in any sheets")

// InvalidYearError reports a rejected year input.
type InvalidYearError struct {
	Input string
	Err   error
}

func (e *InvalidYearError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid year %q: must be a 4-digit year (%v)", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid year %q: must be a 4-digit year", e.Input)
}

func (e *InvalidYearError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidYear.
func (e *InvalidYearError) Is(target error) bool {
	return target == ErrInvalidYear
}

// SheetSkipError describes why a single sheet was dropped.
type SheetSkipError struct {
	Skip models.SheetSkip
	Err  error
}

func (e *SheetSkipError) Error() string {
	if e.Skip.Detail != "" {
		return fmt.Sprintf("skipping sheet %q: %s -> %s", e.Skip.Sheet, e.Skip.Reason, e.Skip.Detail)
	}
	return fmt.Sprintf("skipping sheet %q: %s", e.Skip.Sheet, e.Skip.Reason)
}

func (e *SheetSkipError) Unwrap() error {
	return e.Err
}

// NoDataError is returned when every consulted sheet was skipped.
type NoDataError struct {
	Year    int
	Skipped []models.SheetSkip
	// Err aggregates one SheetSkipError per skipped sheet; nil for a
	// workbook without sheets.
	Err error
}

func (e *NoDataError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s for %d", ErrNoData, e.Year)
	}
	return fmt.Sprintf("%s for %d: %v", ErrNoData, e.Year, e.Err)
}

func (e *NoDataError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNoData.
func (e *NoDataError) Is(target error) bool {
	return target == ErrNoData
}

func newNoDataError(year int, skipped []models.SheetSkip) *NoDataError {
	var merr *multierror.Error
	for _, s := range skipped {
		merr = multierror.Append(merr, &SheetSkipError{Skip: s})
	}
	if merr != nil {
		merr.ErrorFormat = joinSkips
	}
	return &NoDataError{
		Year:    year,
		Skipped: skipped,
		Err:     merr.ErrorOrNil(),
	}
}

func joinSkips(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
