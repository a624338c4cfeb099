package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  flappy scores
  flappy scores --interactive
  flappy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Flappy Bird")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
