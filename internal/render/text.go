package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

const dayLayout = "Mon " + calendar.Layout

type textStyles struct {
	title  lipgloss.Style
	month  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
}

func newTextStyles(w io.Writer, color bool) textStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return textStyles{title: plain, month: plain, header: plain, muted: plain}
	}
	re := lipgloss.NewRenderer(w)
	return textStyles{
		title:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		month:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header: re.NewStyle().Faint(true).Underline(true),
		muted:  re.NewStyle().Faint(true),
	}
}

func renderText(w io.Writer, r Report, color bool) error {
	st := newTextStyles(w, color)
	ew := &errWriter{w: w}
	caret := strings.Repeat("-", 6)

	ew.printf("%s\n", st.title.Render(fmt.Sprintf("%s Budget Planner %d %s", caret, r.Year, caret)))
	summary := fmt.Sprintf("%d weeks", r.Weeks())
	if r.HasBudget() {
		summary += " · " + r.Total.String() + " budgeted"
	}
	ew.printf("%s\n", st.muted.Render(summary))

	for i, rows := range r.rows() {
		m := r.Months[i]
		heading := fmt.Sprintf("%s · %d weeks", m.Name, m.Len())
		if r.HasBudget() {
			heading += " · " + r.Budget[i].Total.String()
		}
		ew.printf("\n%s\n", st.month.Render(heading))

		columns := fmt.Sprintf("  %3s  %-14s  %-14s  %4s", "#", "Start", "End", "Days")
		if r.HasBudget() {
			columns += fmt.Sprintf("  %10s", "Amount")
		}
		ew.printf("%s\n", st.header.Render(columns))

		for _, rw := range rows {
			line := fmt.Sprintf("  %3d  %-14s  %-14s  %4d",
				rw.Number, rw.Week.StartDate.Format(dayLayout), rw.Week.EndDate.Format(dayLayout), rw.Week.Days())
			if rw.Amount != nil {
				line += fmt.Sprintf("  %10s", rw.Amount.String())
			}
			ew.printf("%s\n", line)
		}
	}
	return ew.err
}
