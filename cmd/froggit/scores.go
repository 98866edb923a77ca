package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/julialudwig/froggit/internal/platform/tui"
	"github.com/julialudwig/froggit/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a level, or browse all levels
interactively.

Examples:
  froggit scores easy
  froggit scores gauntlet
  froggit scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	levelID := "easy"
	if len(args) > 0 {
		levelID = args[0]
	}

	// Get top scores
	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", levelID)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'froggit play --level %s' to set the first high score!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "------", "----")

	// Print scores
	for i, entry := range scores {
		result := "drowned"
		if entry.Won {
			result = "won"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, result, dateStr)
	}

	// Show stats summary
	fmt.Println()
	stats, err := store.GetLevelStats(levelID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Games: %d  Wins: %d\n", stats.HighScore, stats.GamesCount, stats.Wins)
	}
}
