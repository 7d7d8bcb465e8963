// Package calendar provides the date primitives the planner is built on.
//
// A date is represented as a [time.Time] at midnight UTC. Every function in
// this package returns values in that form, so dates built here compare
// correctly with == as well as with [time.Time.Equal].
//
// # Usage
//
//	start := calendar.FirstDayOfYear(2024)
//	end := calendar.AddDays(start, 6)
//	days, err := calendar.DaysBetweenInclusive(start, end)
//	if errors.Is(err, calendar.ErrInvalidRange) {
//	    // start was after end
//	}
package calendar
