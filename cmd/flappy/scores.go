package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagTable bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best recorded sessions.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --table     # Interactive table with recent games and stats
  flappy scores --clear     # Forget the history (the high score stays)`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagTable, "table", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history")
}

func runScores(_ *cobra.Command, _ []string) {
	if err := scores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func scores() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	if flagTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	entries, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Flappy Bird")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "Rank", "Score", "Time", "Hit", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %s\n", "----", "-----", "----", "---", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-6d  %-7s  %-8s  %s\n",
			i+1, e.Score, fmt.Sprintf("%.1fs", float64(e.Steps)/60), e.Cause, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	if best, ok, err := store.Get(flappy.HighScoreKey); err == nil && ok && best > 0 {
		fmt.Printf("Stored high score: %d\n", best)
	}
	return nil
}
