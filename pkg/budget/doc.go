// Package budget spreads monthly budget amounts over the weeks each month
// owns.
//
// Amounts are integer cents. A month's amount is divided evenly between
// its weeks and any leftover cents go to the earliest weeks, so the weekly
// amounts of a month always add up to the month's total.
package budget
