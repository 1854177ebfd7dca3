package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arran4/pogreport"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render report text to PDF",
		Long: `Render already templated report text to a PDF.

Example:
  pogreport render --in report.txt --out report.pdf
  cat report.txt | pogreport render --out report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")

			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			text, err := readInput(in)
			if err != nil {
				return err
			}
			return writePDF(text, out, cfg.Options(log), log)
		},
	}
	cmd.Flags().String("in", "", "Report text file (default: stdin)")
	cmd.Flags().String("out", "report.pdf", "Output PDF file")
	return cmd
}

// writePDF generates the whole document in memory and only then creates
// out, so a failed run leaves no partial file behind.
func writePDF(text, out string, opts pogreport.Options, log *zap.Logger) error {
	doc, err := pogreport.Generate(text, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Info("report written",
		zap.String("path", out),
		zap.Int("pages", doc.PageCount()),
		zap.Int("entries", len(doc.TOC())),
	)
	return nil
}
