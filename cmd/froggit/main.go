// froggit is a terminal Frogger-style game: guide frogs across roads and
// rivers into the exits at the top of the map.
//
// Usage:
//
//	froggit play             - Play a level
//	froggit levels           - List available levels
//	froggit serve            - Start SSH server for remote play
//	froggit scores [level]   - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.froggit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/julialudwig/froggit/internal/games/froggit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "froggit",
	Short: "Froggit - Guide frogs home in your terminal",
	Long: `Froggit is a terminal Frogger-style game. Hop across lanes of
traffic, ride logs over the river, and fill every exit in the hedge.

Available commands:
  play     - Play a level
  levels   - Show all available levels
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  froggit play
  froggit play --level gauntlet
  froggit play --level-file ./my-level.yaml --difficulty hard
  froggit levels
  froggit serve --ssh :2222
  froggit scores easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.froggit/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
