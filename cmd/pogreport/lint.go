package main

import (
	"fmt"

	"github.com/arran4/pogreport"
	"github.com/arran4/pogreport/internal/lint"
	"github.com/spf13/cobra"
)

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report markup the renderer will not draw",
		Long: `Check report text for markdown constructs without a painter and for
ragged table rows. Exits non-zero when anything is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			text, err := readInput(in)
			if err != nil {
				return err
			}
			warnings := lint.Check(pogreport.ParseBlocks(text))
			for _, w := range warnings {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			if len(warnings) > 0 {
				return fmt.Errorf("%d lint warning(s)", len(warnings))
			}
			return nil
		},
	}
	cmd.Flags().String("in", "", "Report text file (default: stdin)")
	return cmd
}
