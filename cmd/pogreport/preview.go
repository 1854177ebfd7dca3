package main

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/arran4/pogreport"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render report pages to images",
		Long: `Lay the report out exactly as render would and write every page as
an image, page-001.png, page-002.png and so on.

Example:
  pogreport preview --in report.txt --out-dir pages --dpi 96 --format jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			dir, _ := cmd.Flags().GetString("out-dir")
			format, _ := cmd.Flags().GetString("format")
			dpi, _ := cmd.Flags().GetFloat64("dpi")

			format = strings.ToLower(format)
			if format == "jpeg" {
				format = "jpg"
			}
			if format != "png" && format != "jpg" {
				return fmt.Errorf("unsupported format: %s", format)
			}
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			text, err := readInput(in)
			if err != nil {
				return err
			}
			pages, outline, err := pogreport.Preview(text, cfg.Options(log), dpi)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
			for i, img := range pages {
				var buf bytes.Buffer
				switch format {
				case "png":
					err = png.Encode(&buf, img)
				case "jpg":
					err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 92})
				}
				if err != nil {
					return fmt.Errorf("encode page %d: %w", i+1, err)
				}
				name := filepath.Join(dir, fmt.Sprintf("page-%03d.%s", i+1, format))
				if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
					return err
				}
			}
			for _, e := range outline {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", e.Page, e.Title)
			}
			log.Info("preview written", zap.String("dir", dir), zap.Int("pages", len(pages)))
			return nil
		},
	}
	cmd.Flags().String("in", "", "Report text file (default: stdin)")
	cmd.Flags().String("out-dir", "preview", "Directory for page images")
	cmd.Flags().String("format", "png", "Image format: png|jpg")
	cmd.Flags().Float64("dpi", 96, "Resolution in dots per inch")
	return cmd
}
