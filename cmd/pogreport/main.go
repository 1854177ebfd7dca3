package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arran4/pogreport/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pogreport",
		Short: "Paginated security assessment reports",
		Long: `pogreport lays out report text written with #! directives and
markdown into a paginated PDF whose contents page and footers cite the
pages sections and findings actually land on.

Example:
  pogreport report --findings findings.yaml --asset web-01 --out report.pdf
  pogreport render --in report.txt --out report.pdf`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log layout and request details")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(tocCmd())
	rootCmd.AddCommand(lintCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pogreport:", err)
		os.Exit(1)
	}
}

// setup loads the config named by --config and builds the logger.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("config: %w", err)
	}
	var log *zap.Logger
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
