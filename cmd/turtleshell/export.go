package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/registry"
	"github.com/vovakirdan/turtleshell/internal/render"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

var (
	flagExportFormat string
	flagExportOut    string
	flagExportWidth  int
	flagExportHeight int
)

var exportCmd = &cobra.Command{
	Use:   "export [index]",
	Short: "Write a page to a file",
	Long: `Write the page for an index in one of the registered formats.
Without --out the page is written to turtleshell-<index><ext> in the current
directory; use --out - for stdout.

Examples:
  turtleshell export 3 --format svg
  turtleshell export 3 --format ansi --out - | less -R
  turtleshell export --format yaml --out home.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "svg",
		"Output format: "+strings.Join(registry.IDs(), ", "))
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file ('-' for stdout)")
	exportCmd.Flags().IntVar(&flagExportWidth, "width", 0, "Page width in cells for terminal formats")
	exportCmd.Flags().IntVar(&flagExportHeight, "height", 0, "Page height in rows for terminal formats")
}

// registryOptions passes the size flags to exporters.
func registryOptions() registry.Options {
	return registry.Options{Width: flagExportWidth, Height: flagExportHeight}
}

func runExport(_ *cobra.Command, args []string) error {
	exporter, err := registry.Create(flagExportFormat)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.IDs(), ", "))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	viewport := 1.0
	if flagExportWidth > 0 {
		viewport = scene.ViewportMultiplier(flagExportWidth, cfg.Scene.ReferenceWidth)
	}
	page := render.NewPage(newGenerator(cfg), indexArg(args), viewport)

	out := flagExportOut
	if out == "" {
		out = fmt.Sprintf("turtleshell-%d%s", page.Index, exporter.Extension())
	}
	if out == "-" {
		return exporter.Export(os.Stdout, page, registryOptions())
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", out, err)
	}
	if err := exporter.Export(f, page, registryOptions()); err != nil {
		f.Close()
		return fmt.Errorf("cannot export to %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write %s: %w", out, err)
	}

	logger.Info("exported", "index", page.Index, "format", exporter.ID(), "path", out)
	fmt.Printf("Wrote %s\n", out)
	return nil
}
