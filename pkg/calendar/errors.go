package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a date range starts after it ends.
var ErrInvalidRange = errors.New("calendar: invalid range")

// RangeError describes a degenerate date range. It matches ErrInvalidRange
// with errors.Is.
type RangeError struct {
	Start time.Time
	End   time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: start %s is after end %s", ErrInvalidRange, Format(e.Start), Format(e.End))
}

// Unwrap returns ErrInvalidRange.
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
