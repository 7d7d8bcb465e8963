// Package planner splits a calendar year into weeks and assigns every week
// to the month that owns it.
//
// # Weeks
//
// A year is covered by a contiguous, non-overlapping sequence of [Week]
// values. The first week starts on January 1st and runs to the first
// Sunday of the year; the last week starts on the last Monday of the year
// and ends on December 31st. Every week in between is a full Monday to
// Sunday week. Boundary weeks may therefore be shorter than seven days,
// but no week ever leaves the year.
//
// # Months
//
// A week belongs to the month holding at least four of its days. The
// year's first week always belongs to January and its last week always
// belongs to December, whatever their day counts.
//
//	months, err := planner.ComputeYear(2024)
//	if err != nil {
//	    return err
//	}
//	for _, m := range months {
//	    fmt.Println(m.Name, len(m.Weeks))
//	}
//
// Everything in this package is a pure function over immutable values.
package planner
