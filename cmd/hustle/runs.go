package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HC-Build/Hustle-Trail/internal/registry"
	"github.com/HC-Build/Hustle-Trail/internal/storage"
)

var (
	flagRunsTop   bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Show the recorded run history",
	Long: `Display recent runs for the specified trail variant (default: trail).

Examples:
  hustle runs
  hustle runs trail_classic
  hustle runs --top           # Sort by traction instead of recency
  hustle runs --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsTop, "top", false, "Sort by traction instead of recency")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := "trail"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if the variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hustle list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open run history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get runs
	var runs []storage.RunEntry
	if flagRunsTop {
		runs, err = store.TopRuns(gameID, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(gameID, flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hustle play %s' to write the first one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-20s  %-8s  %-8s  %-9s  %s\n", "Rank", "Company", "Traction", "Outcome", "Distance", "Date")
	fmt.Printf("  %-4s  %-20s  %-8s  %-8s  %-9s  %s\n", "----", "-------", "--------", "-------", "--------", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-20s  %-8d  %-8s  %6.0f mi  %s\n",
			i+1, truncate(entry.Company, 20), entry.Traction, entry.Outcome, entry.Distance, dateStr)
	}

	// Show aggregate stats
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d wins, best traction %d, farthest %.0f mi\n",
			stats.RunsCount, stats.Wins, stats.BestTraction, stats.Farthest)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
