package analysis

import (
	"strconv"

	"Pulse/internal/health/classify"
	"Pulse/internal/health/interpret"
)

func RepTable(rows []interpret.RepRow) Table {
	t := Table{Title: "Percentage of one-rep max", Columns: []string{"%1RM", "Reps", "Load (kg)"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{Number(r.Percent, 0) + "%", strconv.Itoa(r.Reps), Number(r.Load, 1)})
	}
	return t
}

func ZoneTable(title, unit string, places int, zones []interpret.Zone) Table {
	t := Table{Title: title, Columns: []string{"Zone", "Focus", "Intensity", "Range (" + unit + ")"}}
	for _, z := range zones {
		t.Rows = append(t.Rows, []string{
			z.Name,
			z.Focus,
			Number(z.MinPct, 0) + "-" + Number(z.MaxPct, 0) + "%",
			Number(z.Lower, places) + " - " + Number(z.Upper, places),
		})
	}
	return t
}

func ClassificationTable(cs []classify.Classification) Table {
	t := Table{Title: "Classification", Columns: []string{"Metric", "Category", "Risk"}}
	for _, c := range cs {
		t.Rows = append(t.Rows, []string{c.Metric, c.Label, string(c.Risk)})
	}
	return t
}
