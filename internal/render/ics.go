package render

import (
	"io"

	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

const (
	icsProductID = "-//bft-labs//budgetplanner//EN"
	icsDate      = "20060102"
	icsStamp     = "20060102T150405Z"
)

// renderICS writes one all-day event per week. DTEND is exclusive.
func renderICS(w io.Writer, r Report) error {
	ew := &errWriter{w: w}
	line := func(format string, args ...interface{}) {
		ew.printf(format+"\r\n", args...)
	}

	stamp := r.Generated
	if stamp.IsZero() {
		stamp = calendar.FirstDayOfYear(r.Year)
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:%s", icsProductID)
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:Budget weeks %d", r.Year)

	for _, rows := range r.rows() {
		for _, rw := range rows {
			line("BEGIN:VEVENT")
			line("UID:%04d-W%02d@budgetplanner", r.Year, rw.Number)
			line("DTSTAMP:%s", stamp.UTC().Format(icsStamp))
			line("DTSTART;VALUE=DATE:%s", rw.Week.StartDate.Format(icsDate))
			line("DTEND;VALUE=DATE:%s", calendar.AddDays(rw.Week.EndDate, 1).Format(icsDate))
			line("SUMMARY:Week %d (%s)", rw.Number, rw.Month)
			if rw.Amount != nil {
				line("DESCRIPTION:Budget %s", rw.Amount.String())
			}
			line("TRANSP:TRANSPARENT")
			line("END:VEVENT")
		}
	}

	line("END:VCALENDAR")
	return ew.err
}
