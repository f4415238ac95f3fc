package query

import (
	"errors"
	"fmt"
)

// Sentinel kinds for query errors.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoRecords    = errors.New("no records")
)

// DateError reports a day/month pair that does not form a calendar date in
// the reference year.
type DateError struct {
	Day   int
	Month int
	Year  int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date: day %d month %d in year %d", e.Day, e.Month, e.Year)
}

// Is reports ErrInvalidInput as the kind of every DateError.
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidInput
}
