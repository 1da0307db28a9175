// Package analysis flattens calculator results into one printable shape for
// the PDF, spreadsheet and CLI renderers. It never recomputes anything.
package analysis

import (
	"fmt"
	"strconv"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/classify"
	"Pulse/internal/health/measure"
)

type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type Summary struct {
	Calculator      string                    `json:"calculator"`
	Title           string                    `json:"title"`
	Primary         aggregate.Composite       `json:"primary"`
	Extra           []aggregate.Composite     `json:"extra,omitempty"`
	Classifications []classify.Classification `json:"classifications,omitempty"`
	Tables          []Table                   `json:"tables,omitempty"`
	Recommendations []string                  `json:"recommendations"`
	Narrative       string                    `json:"narrative"`
}

// Summarizer is implemented by every calculator result.
type Summarizer interface {
	Summary() Summary
}

// Headline is the first classification label, or empty when unclassified.
func (s Summary) Headline() string {
	if len(s.Classifications) == 0 {
		return ""
	}
	return s.Classifications[0].Label
}

// Methods lists the display names of the formulas behind the primary value.
func (s Summary) Methods() []string {
	out := make([]string, 0, len(s.Primary.Results))
	for _, r := range s.Primary.Results {
		out = append(out, r.Name)
	}
	return out
}

// FormatValue prints v with the composite's precision and unit.
func FormatValue(c aggregate.Composite) string {
	return Number(c.Value, c.Precision) + " " + string(c.Unit)
}

func Number(v float64, places int) string {
	return strconv.FormatFloat(measure.Round(v, places), 'f', places, 64)
}

// Breakdown renders the per-formula results of c, with deviations when a
// reference formula is set.
func Breakdown(c aggregate.Composite) Table {
	t := Table{
		Title:   fmt.Sprintf("%s by formula", c.Metric),
		Columns: []string{"Formula", "Value", "Deviation"},
	}
	for _, r := range c.Results {
		dev := ""
		switch {
		case r.Reference:
			dev = "reference"
		case r.DeviationPct != nil:
			dev = Number(*r.DeviationPct, aggregate.DeviationPlaces) + "%"
		}
		t.Rows = append(t.Rows, []string{r.Name, Number(r.Value, c.Precision), dev})
	}
	for _, s := range c.Skipped {
		t.Rows = append(t.Rows, []string{s.Name, "-", "skipped: " + s.Reason})
	}
	return t
}
