package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestList(t *testing.T) {
	out, err := runCLI(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	for _, name := range []string{"onerm", "bmr", "bsa", "bodyfat", "waist", "ffmi", "vo2max", "heartrate", "bmi", "ibw"} {
		assert.Contains(t, out, name)
	}
}

func TestRunYAMLFile(t *testing.T) {
	path := writeFile(t, "in.yaml", "weight: 80\nheight: 180\n")

	out, err := runCLI(t, "", "run", "bsa", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Body surface area: 2.00 m²")
	assert.Contains(t, out, "Mosteller")
	assert.Contains(t, out, "Dose examples")
}

func TestRunStdinJSON(t *testing.T) {
	out, err := runCLI(t, `{"weight":80,"height":180,"ethnicity":"other"}`, "run", "BMI", "--format", "json")
	require.NoError(t, err)

	var res struct {
		BMI struct {
			Value float64 `json:"value"`
		} `json:"bmi"`
		Category struct {
			Category string `json:"category"`
		} `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 24.7, res.BMI.Value)
	assert.Equal(t, "normal", res.Category.Category)
}

func TestRunPrintsBreakdownOnce(t *testing.T) {
	tests := []struct {
		calc  string
		input string
		title string
	}{
		{"bsa", `{"weight":80,"height":180}`, "bsa by formula"},
		{"waist", `{"sex":"male","waist":90,"hip":100,"height":180}`, "waist_hip_ratio by formula"},
	}
	for _, tt := range tests {
		t.Run(tt.calc, func(t *testing.T) {
			out, err := runCLI(t, tt.input, "run", tt.calc)
			require.NoError(t, err)
			assert.Equal(t, 1, strings.Count(out, tt.title), out)
		})
	}
}

func TestRunNestedYAML(t *testing.T) {
	path := writeFile(t, "in.yml", `
sex: male
age: 30
weight: 80
height: 180
skinfolds:
  chest: 10
  abdomen: 20
  thigh: 15
`)
	out, err := runCLI(t, "", "run", "bodyfat", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Jackson-Pollock")
}

func TestRunPDF(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "bsa.pdf")
	_, err := runCLI(t, `{"weight":80,"height":180}`, "run", "bsa", "--pdf", pdf, "--lang", "de")
	require.NoError(t, err)

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"unknown calculator", `{}`, []string{"run", "nope"}, "unknown calculator"},
		{"bad format", `{}`, []string{"run", "bsa", "--format", "xml"}, "unsupported format"},
		{"empty input", "", []string{"run", "bsa"}, "input is empty"},
		{"invalid field", `{"weight":-5,"height":180}`, []string{"run", "bsa"}, "weight"},
		{"missing args", "", []string{"run"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xlsx")
	out := filepath.Join(dir, "out.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"weight", "height"},
		{80, 180},
		{60, 165},
		{-1, 170},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	stdout, err := runCLI(t, "", "batch", "bsa", "-f", in, "-o", out, "-w", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3 rows, 2 succeeded, 1 failed")

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	assert.Contains(t, res.GetSheetList(), "Results")
}

func TestBatchRequiresFiles(t *testing.T) {
	_, err := runCLI(t, "", "batch", "bsa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file and --output")
}
