package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtleshell/internal/content"
	"github.com/vovakirdan/turtleshell/internal/storage"
)

var (
	flagStatsLimit int
	flagForget     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the most visited heuristics",
	Long: `Display the heuristics with the most recorded visits, along with how
many pages the current --viewer has opened and what they read last.

Examples:
  turtleshell stats
  turtleshell stats --limit 5
  turtleshell stats --db ./visits.db
  turtleshell stats --viewer alice --forget`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of heuristics to show")
	statsCmd.Flags().BoolVar(&flagForget, "forget", false, "Delete the --viewer's history instead")
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		return fmt.Errorf("cannot open visit database: %w", err)
	}
	defer store.Close()

	if flagForget {
		if err := store.ClearViewer(flagViewer); err != nil {
			return err
		}
		logger.Info("history cleared", "viewer", flagViewer)
		fmt.Printf("Forgot the history of %s.\n", flagViewer)
		return nil
	}

	stats, err := store.TopHeuristics(flagStatsLimit)
	if err != nil {
		return err
	}
	mine, err := store.VisitCount(flagViewer)
	if err != nil {
		return err
	}

	fmt.Println("Most visited")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No visits recorded yet.")
		fmt.Println()
		fmt.Println("Run 'turtleshell browse' to start reading!")
		return nil
	}

	fmt.Printf("  %-5s  %-6s  %-7s  %-16s  %s\n", "Index", "Visits", "Viewers", "Last visit", "Heuristic")
	fmt.Printf("  %-5s  %-6s  %-7s  %-16s  %s\n", "-----", "------", "-------", "----------", "---------")
	for _, st := range stats {
		last := ""
		if !st.LastVisited.IsZero() {
			last = st.LastVisited.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-5d  %-6d  %-7d  %-16s  %s\n",
			st.Heuristic, st.Visits, st.Viewers, last, heuristicLabel(st.Heuristic))
	}

	fmt.Println()
	fmt.Printf("%s has opened %d pages.\n", flagViewer, mine)

	recent, err := store.RecentVisits(flagViewer, 5)
	if err != nil {
		return err
	}
	if len(recent) > 0 {
		fmt.Println("Recently:")
		for _, v := range recent {
			fmt.Printf("  %s  %-4s  %s\n", v.CreatedAt.Format("2006-01-02 15:04"),
				content.Path(v.Heuristic), heuristicLabel(v.Heuristic))
		}
	}
	return nil
}
