package render

import (
	"encoding/json"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

// document is the structured form shared by the JSON, YAML and TOML outputs.
type document struct {
	Year      int             `json:"year" yaml:"year" toml:"year"`
	Generated string          `json:"generated,omitempty" yaml:"generated,omitempty" toml:"generated,omitempty"`
	Weeks     int             `json:"weeks" yaml:"weeks" toml:"weeks"`
	Budget    string          `json:"budget_total,omitempty" yaml:"budget_total,omitempty" toml:"budget_total,omitempty"`
	Months    []monthDocument `json:"months" yaml:"months" toml:"months"`
}

type monthDocument struct {
	Name   string         `json:"name" yaml:"name" toml:"name"`
	Budget string         `json:"budget,omitempty" yaml:"budget,omitempty" toml:"budget,omitempty"`
	Weeks  []weekDocument `json:"weeks" yaml:"weeks" toml:"weeks"`
}

type weekDocument struct {
	Number   int    `json:"number" yaml:"number" toml:"number"`
	Start    string `json:"start" yaml:"start" toml:"start"`
	End      string `json:"end" yaml:"end" toml:"end"`
	StartDay string `json:"start_day" yaml:"start_day" toml:"start_day"`
	Days     int    `json:"days" yaml:"days" toml:"days"`
	Amount   string `json:"amount,omitempty" yaml:"amount,omitempty" toml:"amount,omitempty"`
}

func newDocument(r Report) document {
	doc := document{
		Year:   r.Year,
		Weeks:  r.Weeks(),
		Months: make([]monthDocument, 0, len(r.Months)),
	}
	if !r.Generated.IsZero() {
		doc.Generated = r.Generated.Format(time.RFC3339)
	}
	if r.HasBudget() {
		doc.Budget = r.Total.String()
	}

	for i, rows := range r.rows() {
		md := monthDocument{
			Name:  r.Months[i].Name.String(),
			Weeks: make([]weekDocument, 0, len(rows)),
		}
		if r.HasBudget() {
			md.Budget = r.Budget[i].Total.String()
		}
		for _, rw := range rows {
			wd := weekDocument{
				Number:   rw.Number,
				Start:    calendar.Format(rw.Week.StartDate),
				End:      calendar.Format(rw.Week.EndDate),
				StartDay: rw.Week.StartDay.String(),
				Days:     rw.Week.Days(),
			}
			if rw.Amount != nil {
				wd.Amount = rw.Amount.String()
			}
			md.Weeks = append(md.Weeks, wd)
		}
		doc.Months = append(doc.Months, md)
	}
	return doc
}

func renderJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(r))
}

func renderYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(r)); err != nil {
		return err
	}
	return enc.Close()
}

func renderTOML(w io.Writer, r Report) error {
	return toml.NewEncoder(w).Encode(newDocument(r))
}
