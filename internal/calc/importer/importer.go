// Package importer runs a calculator over every row of an xlsx sheet and
// writes the results back as a workbook.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Pulse/internal/calc/batch"
	"Pulse/internal/health/measure"
)

const (
	SheetResults = "Results"
	SheetDetails = "Details"
)

var resultColumns = []string{"Value", "Unit", "Methods", "Category", "Risk", "Error"}

type Row struct {
	Number int // 1-based row in the source sheet
	Cells  []string
	Input  json.RawMessage
}

type Sheet struct {
	Header []string
	Rows   []Row
}

// Read parses the first worksheet. The header row names input fields; a
// dotted name such as skinfolds.chest fills a nested field. Blank rows are
// ignored and blank cells leave a field unset.
func Read(r io.Reader) (Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Sheet{}, measure.Invalid("file", "not an xlsx workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Sheet{}, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return Sheet{}, measure.Invalid("file", "needs a header row and at least one data row")
	}

	sheet := Sheet{Header: rows[0]}
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		input, err := rowInput(sheet.Header, rows[i])
		if err != nil {
			return Sheet{}, err
		}
		sheet.Rows = append(sheet.Rows, Row{Number: i + 1, Cells: rows[i], Input: input})
	}
	if len(sheet.Rows) == 0 {
		return Sheet{}, measure.Invalid("file", "no data rows")
	}
	return sheet, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func rowInput(header, cells []string) (json.RawMessage, error) {
	input := map[string]any{}
	for i, cell := range cells {
		if i >= len(header) {
			break
		}
		key := measure.Normalize(header[i])
		value := strings.TrimSpace(cell)
		if key == "" || value == "" {
			continue
		}
		set(input, strings.Split(key, "."), cellValue(value))
	}
	return json.Marshal(input)
}

// cellValue turns numeric cells into numbers, accepting a decimal comma.
func cellValue(s string) any {
	if v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
		return v
	}
	return s
}

func set(m map[string]any, path []string, v any) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}

// Process evaluates every row with the batch runner.
func Process(ctx context.Context, calculator string, sheet Sheet, workers int) (batch.Result, error) {
	items := make([]json.RawMessage, len(sheet.Rows))
	for i, r := range sheet.Rows {
		items[i] = r.Input
	}
	return batch.Calculate(ctx, batch.Input{Calculator: calculator, Items: items}, workers)
}

// Write produces a workbook with the source columns plus the result columns,
// and a details sheet with the per-formula breakdown of every valid row.
func Write(w io.Writer, sheet Sheet, res batch.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetResults); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetDetails); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := append(append([]string{}, sheet.Header...), resultColumns...)
	if err := writeRow(f, SheetResults, 1, toAny(header)); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(SheetResults, "A1", last, bold); err != nil {
		return err
	}

	details := []any{"Row", "Formula", "Value", "Unit", "Deviation %", "Note"}
	if err := writeRow(f, SheetDetails, 1, details); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetDetails, "A1", "F1", bold); err != nil {
		return err
	}

	detailRow := 2
	for i, row := range sheet.Rows {
		cells := make([]any, len(sheet.Header))
		for j := range cells {
			if j < len(row.Cells) {
				cells[j] = row.Cells[j]
			}
		}
		item := res.Results[i]
		if item.Error != nil {
			cells = append(cells, nil, nil, nil, nil, nil, item.Error.Error())
		} else {
			s := item.Result.Summary()
			risk := ""
			if len(s.Classifications) > 0 {
				risk = string(s.Classifications[0].Risk)
			}
			cells = append(cells, s.Primary.Value, string(s.Primary.Unit), strings.Join(s.Methods(), ", "), s.Headline(), risk, "")

			for _, r := range s.Primary.Results {
				var dev any
				if r.DeviationPct != nil {
					dev = *r.DeviationPct
				}
				note := ""
				if r.Reference {
					note = "reference"
				}
				if err := writeRow(f, SheetDetails, detailRow, []any{row.Number, r.Name, measure.Round(r.Value, s.Primary.Precision), string(r.Unit), dev, note}); err != nil {
					return err
				}
				detailRow++
			}
			for _, sk := range s.Primary.Skipped {
				if err := writeRow(f, SheetDetails, detailRow, []any{row.Number, sk.Name, nil, nil, nil, "skipped: " + sk.Reason}); err != nil {
					return err
				}
				detailRow++
			}
		}
		if err := writeRow(f, SheetResults, i+2, cells); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
