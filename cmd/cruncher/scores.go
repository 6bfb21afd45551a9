package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term-cruncher/internal/games/cruncher"
	"github.com/vovakirdan/term-cruncher/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <category>",
	Short: "Show high scores for a category",
	Long: `Display the top scores and overall stats for the specified category.

Examples:
  cruncher scores cruncher
  cruncher scores cruncher_sea --limit 20
  cruncher scores cruncher --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the category")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	cat, ok := cruncher.CategoryByID(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cruncher list' to see available categories.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		logger.Info("scores cleared", "category", gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", cat.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cruncher play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Streak", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-7s  %s\n", i+1, entry.Score, entry.Streak, entry.Outcome, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Best: %d  Best streak: %d  Avg: %.1f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.BestStreak, stats.AvgScore)
}
