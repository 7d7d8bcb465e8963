package planner

import (
	"fmt"
	"time"

	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

// Week is a run of consecutive days inside one year.
type Week struct {
	StartDate time.Time
	EndDate   time.Time
	StartDay  time.Weekday
}

// Days returns the number of days in the week.
func (w Week) Days() int {
	return int(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}

func (w Week) String() string {
	return fmt.Sprintf("%s .. %s", calendar.Format(w.StartDate), calendar.Format(w.EndDate))
}

// DefineFirstWeek returns the first week of the year opened by date, which
// is expected to be January 1st. The week starts on date and ends on the
// following Sunday, or on date itself when date is a Sunday.
func DefineFirstWeek(date time.Time) Week {
	date = calendar.Normalize(date)

	var offset int
	switch date.Weekday() {
	case time.Monday:
		offset = 6
	case time.Tuesday:
		offset = 5
	case time.Wednesday:
		offset = 4
	case time.Thursday:
		offset = 3
	case time.Friday:
		offset = 2
	case time.Saturday:
		offset = 1
	case time.Sunday:
		offset = 0
	default:
		panic(fmt.Sprintf("planner: unexpected weekday %d", date.Weekday()))
	}

	return Week{
		StartDate: date,
		EndDate:   calendar.AddDays(date, offset),
		StartDay:  date.Weekday(),
	}
}

// DefineLastWeek returns the last week of the year closed by date, which is
// expected to be December 31st. The week ends on date and starts on the
// preceding Monday, or on date itself when date is a Monday.
func DefineLastWeek(date time.Time) Week {
	date = calendar.Normalize(date)

	var offset int
	switch date.Weekday() {
	case time.Monday:
		offset = 0
	case time.Tuesday:
		offset = 1
	case time.Wednesday:
		offset = 2
	case time.Thursday:
		offset = 3
	case time.Friday:
		offset = 4
	case time.Saturday:
		offset = 5
	case time.Sunday:
		offset = 6
	default:
		panic(fmt.Sprintf("planner: unexpected weekday %d", date.Weekday()))
	}

	start := calendar.SubDays(date, offset)
	return Week{
		StartDate: start,
		EndDate:   date,
		StartDay:  start.Weekday(),
	}
}

// DefineNormalWeek returns the Monday to Sunday week containing date.
// StartDay records the weekday of date, which is Monday for every week
// produced by DefineWeekRange.
func DefineNormalWeek(date time.Time) Week {
	date = calendar.Normalize(date)

	sinceMonday := (int(date.Weekday()) + 6) % 7
	start := calendar.SubDays(date, sinceMonday)
	return Week{
		StartDate: start,
		EndDate:   calendar.AddDays(start, 6),
		StartDay:  date.Weekday(),
	}
}

// DefineWeekRange returns one normal week for every Monday between start
// and end, both included, in chronological order.
func DefineWeekRange(start, end time.Time) ([]Week, error) {
	days, err := calendar.DaysBetweenInclusive(start, end)
	if err != nil {
		return nil, fmt.Errorf("define week range: %w", err)
	}

	weeks := make([]Week, 0, len(days)/7+1)
	for _, d := range days {
		if d.Weekday() == time.Monday {
			weeks = append(weeks, DefineNormalWeek(d))
		}
	}
	return weeks, nil
}
