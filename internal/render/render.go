// Package render writes a computed year to the console or to a file in one
// of several formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bft-labs/budgetplanner/pkg/budget"
	"github.com/bft-labs/budgetplanner/pkg/planner"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatICS  Format = "ics"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatICS}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Report is everything needed to display one year.
type Report struct {
	Year   int
	Months []planner.Month

	// Budget is aligned with Months. It is empty when no budget is set.
	Budget []budget.MonthAllocation
	Total  budget.Cents

	Generated time.Time
}

// NewReport builds a Report. A nil budget leaves amounts out of the output.
func NewReport(year int, months []planner.Month, b *budget.Budget, generated time.Time) Report {
	r := Report{Year: year, Months: months, Generated: generated.UTC()}
	if b != nil {
		r.Budget = budget.Allocate(months, *b)
		r.Total = b.Total()
	}
	return r
}

// HasBudget reports whether the report carries budget amounts.
func (r Report) HasBudget() bool {
	return len(r.Budget) == len(r.Months) && len(r.Budget) > 0
}

// Weeks returns the total number of weeks in the report.
func (r Report) Weeks() int {
	n := 0
	for _, m := range r.Months {
		n += m.Len()
	}
	return n
}

// Options controls rendering.
type Options struct {
	Format Format

	// Color enables terminal styling for the text format.
	Color bool
}

// Render writes r to w.
func Render(w io.Writer, r Report, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return renderText(w, r, opts.Color)
	case FormatJSON:
		return renderJSON(w, r)
	case FormatYAML:
		return renderYAML(w, r)
	case FormatTOML:
		return renderTOML(w, r)
	case FormatICS:
		return renderICS(w, r)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}

// row is one week as displayed, numbered across the whole year.
type row struct {
	Number int
	Month  time.Month
	Week   planner.Week
	Amount *budget.Cents
}

// rows flattens the report into year-ordered rows.
func (r Report) rows() [][]row {
	out := make([][]row, len(r.Months))
	n := 0
	for i, m := range r.Months {
		out[i] = make([]row, 0, len(m.Weeks))
		for j, w := range m.Weeks {
			n++
			rw := row{Number: n, Month: m.Name, Week: w}
			if r.HasBudget() && j < len(r.Budget[i].Weeks) {
				amount := r.Budget[i].Weeks[j].Amount
				rw.Amount = &amount
			}
			out[i] = append(out[i], rw)
		}
	}
	return out
}

// errWriter keeps the first write error so callers can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
