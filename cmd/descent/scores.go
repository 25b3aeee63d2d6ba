package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show the deepest runs",
	Long: `Display the deepest runs, either for one difficulty preset or
across all of them.

Examples:
  descent scores
  descent scores hard
  descent scores normal --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	difficulty := ""
	title := "All difficulties"
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'descent list' to see the presets.")
			os.Exit(1)
		}
		difficulty = string(preset)
		title = difficulty
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(difficulty, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Deepest Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'descent play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "Rank", "Depth", "Preset", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-10s  %s\n", "----", "-----", "------", "----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8s  %-10s  %s\n", i+1, run.Score, run.Difficulty, run.Orientation, dateStr)
	}

	if difficulty == "" {
		return
	}

	fmt.Println()
	stats, err := store.Stats(difficulty)
	if err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.0f\n", stats.HighScore, stats.RunsCount, stats.AvgScore)
	}
}
