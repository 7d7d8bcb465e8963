package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the textual form of a date used throughout budgetplanner.
const Layout = "2006-01-02"

// Date returns the given calendar day at midnight UTC.
// Out-of-range values are normalized the way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the time-of-day and zone of t, keeping its calendar day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// FirstDayOfYear returns January 1st of year.
func FirstDayOfYear(year int) time.Time {
	return Date(year, time.January, 1)
}

// LastDayOfYear returns December 31st of year.
func LastDayOfYear(year int) time.Time {
	return Date(year, time.December, 31)
}

// AddDays returns the date n days after d.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// SubDays returns the date n days before d.
func SubDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, -n)
}

// DaysBetweenInclusive returns every date from start to end, both included,
// in ascending order. It returns a *RangeError when start is after end.
func DaysBetweenInclusive(start, end time.Time) ([]time.Time, error) {
	start, end = Normalize(start), Normalize(end)
	if start.After(end) {
		return nil, &RangeError{Start: start, End: end}
	}

	n := int(end.Sub(start).Hours()/24) + 1
	days := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days, nil
}

// Format renders d as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(Layout)
}

// ParseMonth accepts an English month name ("march", "Mar") or its number
// ("3"), case-insensitively.
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("calendar: month %d out of range", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || (len(s) == 3 && s == name[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("calendar: unknown month %q", s)
}
