package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Pulse/internal/calc/catalog"
)

func newListCommand() *cobra.Command {
	var showExamples bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tDESCRIPTION")
			for _, e := range catalog.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Title, e.Description)
				if showExamples {
					fmt.Fprintf(tw, "\texample:\t%s\n", e.Example)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&showExamples, "examples", false, "Show an example input for each calculator")

	return cmd
}
