package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/render"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

var flagShowHeight int

var showCmd = &cobra.Command{
	Use:   "show [index]",
	Short: "Print a single page",
	Long: `Print the page for an index (0 or nothing for home) with its sky.
The sky fills the terminal and shapes scale with its width.

Examples:
  turtleshell show
  turtleshell show 12
  turtleshell show /12 --height 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowHeight, "height", 0, "Page height in rows (default: terminal height)")
}

func runShow(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize(cfg.Scene.ReferenceWidth, 40)
	if flagShowHeight > 0 {
		height = flagShowHeight
	}
	viewport := scene.ViewportMultiplier(width, cfg.Scene.ReferenceWidth)

	page := render.NewPage(newGenerator(cfg), indexArg(args), viewport)
	logger.Debug("rendering page", "index", page.Index, "width", width, "viewport", viewport)

	if store := openStore(cfg); store != nil {
		if _, err := store.RecordVisit(flagViewer, page.Index); err != nil {
			logger.Warn("could not record visit", "error", err)
		}
		store.Close()
	}

	fmt.Println(page.Render(lipgloss.DefaultRenderer(), render.Options{Width: width, Height: height - 1}))
	return nil
}
