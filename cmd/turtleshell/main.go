// turtleshell shows "Snacksized Personal Learnings, Served on a Turtleshell"
// in the terminal: short heuristics paired with a generated sky and mountain.
//
// Usage:
//
//	turtleshell list                   - List heuristics
//	turtleshell show [index]           - Print one page
//	turtleshell scene [index]          - Dump the generated scene
//	turtleshell export [index]         - Write a page as ansi, text, svg or yaml
//	turtleshell browse [index]         - Browse interactively
//	turtleshell serve                  - Start SSH server for remote browsing
//	turtleshell stats                  - Show the most visited heuristics
//	turtleshell config                 - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.turtleshell/config.yaml)
//	--db <path>        - Visit database (default from config)
//	--log-level <lvl>  - debug, info, warn or error
//	--viewer <name>    - Name recorded with visits (default: $USER)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turtleshell/internal/config"
	"github.com/vovakirdan/turtleshell/internal/content"
	"github.com/vovakirdan/turtleshell/internal/scene"
	"github.com/vovakirdan/turtleshell/internal/storage"

	// Import exporters to register them
	_ "github.com/vovakirdan/turtleshell/internal/export"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagViewer   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "turtleshell",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turtleshell",
	Short: "Snacksized personal learnings, served on a turtleshell",
	Long: `turtleshell shows a collection of short heuristics in the terminal.
Every page comes with its own sky of colored shapes and a mountain, generated
deterministically from the page number.

Available commands:
  list     - Show all heuristics
  show     - Print a single page
  scene    - Dump a page's generated scene
  export   - Write a page to a file (ansi, text, svg, yaml)
  browse   - Browse pages interactively
  serve    - Start SSH server for remote browsing
  stats    - Most visited heuristics
  config   - Print the effective configuration

Examples:
  turtleshell list
  turtleshell show 7
  turtleshell export 3 --format svg --out three.svg
  turtleshell browse --resume
  turtleshell serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to visit database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagViewer, "viewer", defaultViewer(), "Name recorded with visits")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sceneCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultViewer is the login name, or "local" when unknown.
func defaultViewer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "path", flagConfig, "elements", cfg.Scene.ElementCount)
	return cfg, nil
}

// newGenerator builds a scene generator from the configuration.
func newGenerator(cfg config.Config) *scene.Generator {
	return scene.NewGenerator(cfg.Scene.Params())
}

// dbPath returns the database path from --db or the config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}

// openStore opens the visit database. Failure is logged and returns nil so
// commands can continue without history.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open visit database", "error", err)
		return nil
	}
	return store
}

// indexArg parses an optional index argument like "7" or "/7".
func indexArg(args []string) int {
	if len(args) == 0 {
		return 0
	}
	index := content.ParseIndex(args[0])
	if resolved := content.Resolve(index); resolved != index {
		logger.Warn("no such heuristic, showing home", "index", args[0])
		return resolved
	}
	return index
}

// terminalSize returns the stdout size, or fallback when stdout is not a terminal.
func terminalSize(fallbackW, fallbackH int) (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return fallbackW, fallbackH
}
