package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/platform/tui"
)

var flagResume bool

var browseCmd = &cobra.Command{
	Use:   "browse [index]",
	Short: "Browse heuristics interactively",
	Long: `Open the interactive browser at an index (home by default).

Controls:
  ←/h, →/l     - Previous / next heuristic
  Space/Enter  - Continue (the last heuristic leads home)
  0            - Home
  g            - Go to a number
  Tab          - Most visited
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  turtleshell browse
  turtleshell browse 5
  turtleshell browse --resume`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&flagResume, "resume", false, "Start where --viewer left off")
}

func runBrowse(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := terminalSize(cfg.Scene.ReferenceWidth, 40)
	opts := tui.Options{
		Generator:      newGenerator(cfg),
		Viewer:         flagViewer,
		Start:          indexArg(args),
		Width:          width,
		Height:         height,
		ReferenceWidth: cfg.Scene.ReferenceWidth,
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
		opts.Visits = store

		if flagResume && len(args) == 0 {
			index, ok, err := store.LastVisited(flagViewer)
			switch {
			case err != nil:
				logger.Warn("could not load history", "error", err)
			case ok:
				opts.Start = index
			}
		}
	} else if flagResume {
		logger.Warn("cannot resume without a visit database")
	}

	return tui.Run(opts)
}
