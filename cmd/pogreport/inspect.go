package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE.pdf",
		Short: "Print page count and bookmarks of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, r, err := pdf.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pages: %d\n", r.NumPage())
			printOutline(out, r.Outline().Child, 0)
			return nil
		},
	}
}

func printOutline(w io.Writer, items []pdf.Outline, depth int) {
	for _, o := range items {
		fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth), o.Title)
		printOutline(w, o.Child, depth+1)
	}
}
