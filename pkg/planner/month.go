package planner

import (
	"fmt"
	"time"

	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

// majority is the number of days a month needs in a week to own it.
const majority = 4

// Month is a calendar month with the weeks it owns, in chronological order.
type Month struct {
	Name  time.Month
	Weeks []Week
}

// Len returns the number of weeks owned by the month.
func (m Month) Len() int {
	return len(m.Weeks)
}

func (m Month) String() string {
	return fmt.Sprintf("%s (%d weeks)", m.Name, len(m.Weeks))
}

// IsDayOwnedByMonth reports whether date lies in month.
func IsDayOwnedByMonth(date time.Time, month time.Month) bool {
	return date.Month() == month
}

// DaysInWeekOwnedByMonth counts the days of w that lie in month.
func DaysInWeekOwnedByMonth(w Week, month time.Month) int {
	n := 0
	for d := w.StartDate; !d.After(w.EndDate); d = calendar.AddDays(d, 1) {
		if IsDayOwnedByMonth(d, month) {
			n++
		}
	}
	return n
}

// IsWeekOwnedByMonth reports whether w is reported under month.
//
// A week starting on January 1st belongs to January and a week ending on
// December 31st belongs to December regardless of day counts. Otherwise
// the month needs at least four of the week's days.
func IsWeekOwnedByMonth(w Week, month time.Month) bool {
	if month == time.January && isNewYearsDay(w.StartDate) {
		return true
	}
	if month == time.December && isNewYearsEve(w.EndDate) {
		return true
	}
	return DaysInWeekOwnedByMonth(w, month) >= majority
}

// SplitInMonth keeps the weeks owned by month, preserving their order.
func SplitInMonth(weeks []Week, month time.Month) Month {
	owned := make([]Week, 0, 5)
	for _, w := range weeks {
		if IsWeekOwnedByMonth(w, month) {
			owned = append(owned, w)
		}
	}
	return Month{Name: month, Weeks: owned}
}

// SplitInMonths groups weeks into the twelve months, January to December.
func SplitInMonths(weeks []Week) []Month {
	months := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, SplitInMonth(weeks, m))
	}
	return months
}

func isNewYearsDay(d time.Time) bool {
	return d.Month() == time.January && d.Day() == 1
}

func isNewYearsEve(d time.Time) bool {
	return d.Month() == time.December && d.Day() == 31
}
