package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/export"
	"github.com/vovakirdan/turtleshell/internal/registry"
	"github.com/vovakirdan/turtleshell/internal/render"
)

var (
	flagSceneFormat   string
	flagSceneViewport float64
)

var sceneCmd = &cobra.Command{
	Use:   "scene [index]",
	Short: "Dump a page's generated scene",
	Long: `Print the descriptors generated for an index: base color, perspective,
mountain and every sky element.

Formats:
  yaml  - machine readable (default)
  text  - aligned table

Examples:
  turtleshell scene 4
  turtleshell scene 4 --format text --viewport 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScene,
}

func init() {
	sceneCmd.Flags().StringVar(&flagSceneFormat, "format", "yaml", "Output format: yaml or text")
	sceneCmd.Flags().Float64Var(&flagSceneViewport, "viewport", 1, "Viewport multiplier")
}

func runScene(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	page := render.NewPage(newGenerator(cfg), indexArg(args), flagSceneViewport)

	switch flagSceneFormat {
	case "yaml":
		return export.YAML{}.Export(os.Stdout, page, registry.Options{})
	case "text":
		printSceneTable(page)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or text)", flagSceneFormat)
	}
}

// printSceneTable prints the scene as aligned columns.
func printSceneTable(page render.Page) {
	sc := page.Scene
	fmt.Printf("Heuristic %d  base %s  perspective %d\n", sc.Heuristic, sc.BaseColor, sc.Perspective)
	fmt.Printf("Mountain bottom %.2f%%  dark %s  light %s\n\n", page.Mountain.Bottom, page.Mountain.Dark, page.Mountain.Light)

	fmt.Printf("  %-3s  %7s  %7s  %5s  %8s  %7s  %7s  %s\n",
		"#", "Left", "Top", "Depth", "Rotation", "Scale", "Opacity", "Color")
	for _, el := range sc.Elements {
		fmt.Printf("  %-3d  %7.2f  %7.2f  %5d  %8.2f  %7.3f  %7.3f  %s\n",
			el.Index, el.Left, el.Top, el.Depth, el.Rotation, el.Scale, el.Opacity, el.Color)
	}
}
