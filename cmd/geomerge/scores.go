package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geomerge/internal/platform/tui"
	"github.com/vovakirdan/geomerge/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the top 10 recorded runs.

With --interactive, opens a scrollable full-screen table instead.

Examples:
  geomerge scores
  geomerge scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Open the full-screen scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'geomerge play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Points", "Best", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "------", "----", "------", "----")

	for i, entry := range runs {
		result := "-"
		if entry.Victory {
			result = "victory"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %s\n", i+1, entry.Points, entry.BestToken, result, dateStr)
	}

	fmt.Println()
	if best, err := store.BestPoints(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if victories, err := store.VictoryCount(); err == nil {
		fmt.Printf("Victories: %d\n", victories)
	}
}
