package budget

import (
	"time"

	"github.com/bft-labs/budgetplanner/pkg/planner"
)

// Budget holds the amount to spend per month.
type Budget struct {
	// Default applies to every month without an override.
	Default Cents

	// Months overrides Default for individual months.
	Months map[time.Month]Cents
}

// For returns the amount budgeted for month.
func (b Budget) For(month time.Month) Cents {
	if c, ok := b.Months[month]; ok {
		return c
	}
	return b.Default
}

// Total returns the amount budgeted over the whole year. It cannot overflow
// while every amount is at most MaxAmount.
func (b Budget) Total() Cents {
	var total Cents
	for m := time.January; m <= time.December; m++ {
		total += b.For(m)
	}
	return total
}

// WeekAllocation is the share of a month's budget given to one week.
type WeekAllocation struct {
	Week   planner.Week
	Amount Cents
}

// MonthAllocation is a month's budget split over its weeks.
type MonthAllocation struct {
	Month time.Month
	Total Cents
	Weeks []WeekAllocation
}

// Allocate splits each month's budget evenly over the weeks it owns. The
// result has one entry per input month, in the same order.
func Allocate(months []planner.Month, b Budget) []MonthAllocation {
	out := make([]MonthAllocation, 0, len(months))
	for _, m := range months {
		out = append(out, allocateMonth(m, b.For(m.Name)))
	}
	return out
}

func allocateMonth(m planner.Month, total Cents) MonthAllocation {
	alloc := MonthAllocation{Month: m.Name, Total: total}
	n := Cents(len(m.Weeks))
	if n == 0 {
		return alloc
	}

	share, rest := total/n, total%n
	alloc.Weeks = make([]WeekAllocation, 0, len(m.Weeks))
	for i, w := range m.Weeks {
		amount := share
		if Cents(i) < rest {
			amount++
		}
		alloc.Weeks = append(alloc.Weeks, WeekAllocation{Week: w, Amount: amount})
	}
	return alloc
}
