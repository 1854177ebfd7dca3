package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/arran4/pogreport"
	"github.com/spf13/cobra"
)

func tocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toc",
		Short: "Print the contents the report would get",
		Long: `Run the layout dry run over report text and print each section and
finding with the page it lands on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			text, err := readInput(in)
			if err != nil {
				return err
			}
			entries := pogreport.Simulate(pogreport.ParseBlocks(text), cfg.Metrics())
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAGE\tKIND\tSEVERITY\tTITLE")
			for _, e := range entries {
				kind, sev := "finding", e.Severity
				if e.IsSection {
					kind, sev = "section", "-"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Page, kind, sev, e.Label)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("in", "", "Report text file (default: stdin)")
	return cmd
}
