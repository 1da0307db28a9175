// Package report renders a calculator summary as a PDF document.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"Pulse/internal/health/aggregate"
	"Pulse/internal/health/analysis"
)

const pageWidth = 190.0 // A4 minus 10 mm margins

const disclaimer = "Estimates are derived from published population equations and are not a diagnosis."

type Options struct {
	Title   string
	Subject string
	Author  string
	Date    time.Time
	Lang    language.Tag
}

// Render writes s as a single A4 document.
func Render(w io.Writer, s analysis.Summary, opts Options) error {
	if opts.Title == "" {
		opts.Title = s.Title + " report"
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}
	p := message.NewPrinter(opts.Lang)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(opts.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if opts.Subject != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Subject: %s", opts.Subject)))
		pdf.Ln(6)
	}
	if opts.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", opts.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", opts.Date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", s.Title, FormatValue(p, s.Primary))))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range s.Extra {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s", c.Metric, FormatValue(p, c))))
		pdf.Ln(6)
	}
	for _, c := range s.Classifications {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s (risk: %s)", c.Metric, c.Label, c.Risk)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr("Methods: "+strings.Join(s.Methods(), ", ")))
	pdf.Ln(10)

	pdf.MultiCell(0, 6, tr(s.Narrative), "", "L", false)
	pdf.Ln(4)

	for _, t := range s.Tables {
		table(pdf, tr, t)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Recommendations")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, rec := range s.Recommendations {
		pdf.MultiCell(0, 6, tr("- "+rec), "", "L", false)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, disclaimer, "", "L", false)

	return pdf.Output(w)
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, t analysis.Table) {
	if len(t.Columns) == 0 {
		return
	}
	width := pageWidth / float64(len(t.Columns))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(t.Title))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range t.Columns {
		pdf.CellFormat(width, 7, tr(col), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range t.Rows {
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(width, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

// FormatValue prints the composite with locale grouping and its own precision.
func FormatValue(p *message.Printer, c aggregate.Composite) string {
	return p.Sprintf(fmt.Sprintf("%%.%df", c.Precision), c.Value) + " " + string(c.Unit)
}
