package planner

import (
	"fmt"
	"time"

	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

// DefineWeeksInYear covers yearStart..yearEnd with the first week, every
// normal week in between, and the last week.
func DefineWeeksInYear(yearStart, yearEnd time.Time) ([]Week, error) {
	first := DefineFirstWeek(yearStart)
	last := DefineLastWeek(yearEnd)

	middle, err := DefineWeekRange(calendar.AddDays(first.EndDate, 1), calendar.SubDays(last.StartDate, 1))
	if err != nil {
		return nil, fmt.Errorf("define weeks in year: %w", err)
	}

	weeks := make([]Week, 0, len(middle)+2)
	weeks = append(weeks, first)
	weeks = append(weeks, middle...)
	weeks = append(weeks, last)
	return weeks, nil
}

// WeeksInYear returns the week sequence of year.
func WeeksInYear(year int) ([]Week, error) {
	weeks, err := DefineWeeksInYear(calendar.FirstDayOfYear(year), calendar.LastDayOfYear(year))
	if err != nil {
		return nil, fmt.Errorf("year %d: %w", year, err)
	}
	return weeks, nil
}

// ComputeYear returns the twelve months of year, January first, each
// holding the weeks it owns.
func ComputeYear(year int) ([]Month, error) {
	weeks, err := WeeksInYear(year)
	if err != nil {
		return nil, err
	}
	return SplitInMonths(weeks), nil
}
