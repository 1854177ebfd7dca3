package main

import (
	"fmt"
	"os"
	"time"

	"github.com/arran4/pogreport/internal/findings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a report from findings and a template",
		Long: `Filter findings by asset and date, run them through a template and
render the result to PDF. Without --template the built-in report layout is
used. Dates are YYYY/MM/DD and both bounds are inclusive.

Example:
  pogreport report --findings findings.yaml --asset web-01 --from 2026/01/01 --to 2026/03/31
  pogreport report --findings findings.yaml --template custom.tmpl --text-only > report.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmplPath, _ := cmd.Flags().GetString("template")
			findingsPath, _ := cmd.Flags().GetString("findings")
			asset, _ := cmd.Flags().GetString("asset")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			out, _ := cmd.Flags().GetString("out")
			sortSev, _ := cmd.Flags().GetBool("sort")
			textOnly, _ := cmd.Flags().GetBool("text-only")

			if findingsPath == "" {
				return fmt.Errorf("--findings flag is required")
			}
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			tmpl := findings.DefaultTemplate
			if tmplPath != "" {
				data, err := os.ReadFile(tmplPath)
				if err != nil {
					return fmt.Errorf("read template: %w", err)
				}
				tmpl = string(data)
			}

			all, err := findings.LoadFile(findingsPath)
			if err != nil {
				return err
			}
			selected := findings.Filter(all, asset, from, to)
			if sortSev {
				findings.SortBySeverity(selected)
			}
			log.Debug("findings selected", zap.Int("loaded", len(all)), zap.Int("selected", len(selected)))

			text, err := findings.Render(tmpl, findings.NewContext(selected, asset, from, to, time.Now()))
			if err != nil {
				return err
			}
			if textOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}
			return writePDF(text, out, cfg.Options(log), log)
		},
	}
	cmd.Flags().StringP("template", "t", "", "Report template (default: built-in)")
	cmd.Flags().String("findings", "", "YAML list of findings")
	cmd.Flags().StringP("asset", "a", "", "Only findings for this asset")
	cmd.Flags().String("from", "", "Earliest finding date, YYYY/MM/DD")
	cmd.Flags().String("to", "", "Latest finding date, YYYY/MM/DD")
	cmd.Flags().StringP("out", "o", "report.pdf", "Output PDF file")
	cmd.Flags().Bool("sort", false, "Order findings from Critical to Info")
	cmd.Flags().Bool("text-only", false, "Print the templated text instead of rendering")
	return cmd
}
