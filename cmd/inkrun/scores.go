package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ink-runner/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 recorded runs together with lifetime stats.

Examples:
  inkrun scores
  inkrun scores --clear`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close() //nolint:errcheck // best-effort close on exit

	if flagClearScores {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All recorded runs deleted.")
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Ink Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'inkrun play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-6s  %s\n", "Rank", "Score", "Coins", "Time", "Jumps", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----", "-----", "----")

	for i, run := range runs {
		duration := time.Duration(run.DurationMs) * time.Millisecond
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-8s  %-6d  %s\n",
			i+1, run.Score, run.Coins, formatDuration(duration), run.Jumps, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Avg: %.0f   Coins total: %d   Played: %s\n",
		stats.RunCount, stats.HighScore, stats.AvgScore, stats.TotalCoins,
		formatDuration(time.Duration(stats.TotalPlayedMs)*time.Millisecond))
}

// formatDuration renders a run duration as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
