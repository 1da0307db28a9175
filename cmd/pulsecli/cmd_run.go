package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"Pulse/internal/calc/catalog"
	"Pulse/internal/calc/report"
	"Pulse/internal/health/analysis"
)

type runOptions struct {
	inputFile string
	format    string
	pdfPath   string
	lang      string
	title     string
	subject   string
}

func newRunCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <calculator>",
		Short: "Run one calculator on a YAML or JSON input",
		Long: `Run one calculator and print its result.

The input is read from the file given with --file, or from standard input
when no file is given. YAML and JSON are both accepted.`,
		Example: `  pulsecli run bmi -f measurements.yaml
  echo '{"weight":80,"height":180}' | pulsecli run bsa --format json
  pulsecli run bmr -f me.json --pdf bmr.pdf --lang de`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculator(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.inputFile, "file", "f", "", "Input file (.yaml, .yml or .json); stdin when empty")
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table or json")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "Also write a PDF report to this path")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "Number formatting language for the PDF report")
	cmd.Flags().StringVar(&opts.title, "title", "", "PDF report title")
	cmd.Flags().StringVar(&opts.subject, "subject", "", "Name of the person the PDF report is about")

	return cmd
}

func runCalculator(cmd *cobra.Command, name string, opts runOptions) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", opts.format)
	}
	entry, err := catalog.Lookup(name)
	if err != nil {
		return err
	}

	var data []byte
	if opts.inputFile == "" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(opts.inputFile)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	raw, err := toJSON(data)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	slog.Debug("running calculator", "name", entry.Name, "input", string(raw))

	res, err := entry.Run(raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else if err := printSummary(out, res.Summary()); err != nil {
		return err
	}

	if opts.pdfPath != "" {
		return writePDF(opts, res.Summary())
	}
	return nil
}

// toJSON accepts either JSON or YAML. YAML is a superset of JSON, so every
// input goes through the YAML decoder.
func toJSON(data []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("input is empty")
	}
	var v map[string]any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func printSummary(w io.Writer, s analysis.Summary) error {
	fmt.Fprintf(w, "%s: %s\n", s.Title, analysis.FormatValue(s.Primary))
	for _, c := range s.Classifications {
		fmt.Fprintf(w, "  %s: %s (risk: %s)\n", c.Metric, c.Label, c.Risk)
	}
	for _, c := range s.Extra {
		fmt.Fprintf(w, "  %s: %s\n", c.Metric, analysis.FormatValue(c))
	}

	for _, t := range s.Tables {
		fmt.Fprintf(w, "\n%s\n", t.Title)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
		for _, row := range t.Rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%s\n", s.Narrative)
	for _, r := range s.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}
	return nil
}

func writePDF(opts runOptions, s analysis.Summary) error {
	lang, err := language.Parse(opts.lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", opts.lang, err)
	}
	f, err := os.Create(filepath.Clean(opts.pdfPath))
	if err != nil {
		return err
	}
	if err := report.Render(f, s, report.Options{Title: opts.title, Subject: opts.subject, Lang: lang}); err != nil {
		f.Close()
		return fmt.Errorf("rendering report: %w", err)
	}
	slog.Debug("wrote report", "path", opts.pdfPath)
	return f.Close()
}
