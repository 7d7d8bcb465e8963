// Package budgetplanner splits a calendar year into weeks and assigns each
// week to the month holding most of its days.
//
// Example usage:
//
//	months, err := budgetplanner.ComputeYear(2024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	plan := budgetplanner.Allocate(months, budgetplanner.Budget{Default: 150000})
//	for _, m := range plan {
//	    fmt.Println(m.Month, m.Total)
//	}
package budgetplanner

import (
	"io"
	"time"

	"github.com/bft-labs/budgetplanner/internal/render"
	"github.com/bft-labs/budgetplanner/pkg/budget"
	"github.com/bft-labs/budgetplanner/pkg/planner"
)

// Week is a contiguous run of days inside one year.
type Week = planner.Week

// Month is a calendar month with the weeks it owns.
type Month = planner.Month

// Budget holds per-month amounts.
type Budget = budget.Budget

// Cents is an amount of money in hundredths.
type Cents = budget.Cents

// MonthAllocation is a month's budget split across its weeks.
type MonthAllocation = budget.MonthAllocation

// ComputeYear returns the twelve months of year, January first, each with
// the weeks it owns. Every week of the year appears in exactly one month.
func ComputeYear(year int) ([]Month, error) {
	return planner.ComputeYear(year)
}

// WeeksInYear returns the weeks of year in order.
func WeeksInYear(year int) ([]Week, error) {
	return planner.WeeksInYear(year)
}

// Allocate spreads each month's amount over its weeks.
func Allocate(months []Month, b Budget) []MonthAllocation {
	return budget.Allocate(months, b)
}

// Render writes the plan for year to w in the named format
// (text, json, yaml, toml or ics). b may be nil.
func Render(w io.Writer, year int, format string, b *Budget) error {
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	months, err := planner.ComputeYear(year)
	if err != nil {
		return err
	}
	return render.Render(w, render.NewReport(year, months, b, time.Now()), render.Options{Format: f})
}
