package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"Pulse/internal/calc/catalog"
	"Pulse/internal/calc/importer"
)

func newBatchCommand() *cobra.Command {
	var (
		inputFile  string
		outputFile string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "batch <calculator>",
		Short: "Run a calculator on every row of a spreadsheet",
		Long: `Read measurements from the first sheet of an .xlsx workbook, one person per
row with input field names in the header row, and write a workbook with one
result row per input row.

Nested fields use dotted headers, for example skinfolds.chest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" || outputFile == "" {
				return fmt.Errorf("both --file and --output are required")
			}
			entry, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			in, err := os.Open(inputFile)
			if err != nil {
				return err
			}
			defer in.Close()
			sheet, err := importer.Read(in)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputFile, err)
			}
			slog.Debug("read workbook", "path", inputFile, "rows", len(sheet.Rows))

			res, err := importer.Process(cmd.Context(), entry.Name, sheet, workers)
			if err != nil {
				return err
			}

			out, err := os.Create(outputFile)
			if err != nil {
				return err
			}
			if err := importer.Write(out, sheet, res); err != nil {
				out.Close()
				return fmt.Errorf("writing %s: %w", outputFile, err)
			}
			if err := out.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, %d succeeded, %d failed -> %s\n",
				entry.Name, len(sheet.Rows), res.Succeeded, res.Failed, outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Input workbook (.xlsx)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output workbook (.xlsx)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of rows calculated in parallel")

	return cmd
}
