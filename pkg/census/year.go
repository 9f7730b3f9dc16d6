package census

import (
	"errors"
	"strconv"
	"strings"
)

// Bounds of an accepted target year.
const (
	MinYear = 1000
	MaxYear = 9999
)

var errYearRange = errors.New("out of range")

// ParseYear parses a target year typed by a user.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidYearError{Input: s, Err: err}
	}
	if err := ValidateYear(year); err != nil {
		return 0, &InvalidYearError{Input: s, Err: errYearRange}
	}
	return year, nil
}

// ValidateYear checks that year lies in [MinYear, MaxYear].
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &InvalidYearError{Input: strconv.Itoa(year), Err: errYearRange}
	}
	return nil
}
