package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/julialudwig/froggit/internal/core"
	"github.com/julialudwig/froggit/internal/games/froggit"
	"github.com/julialudwig/froggit/internal/platform/tui"
	"github.com/julialudwig/froggit/internal/registry"
	"github.com/julialudwig/froggit/internal/storage"
)

var (
	flagLevel      string
	flagLevelDir   string
	flagLevelFile  string
	flagConfig     string
	flagObjects    string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing Froggit.

Controls:
  WASD/Arrows - Hop
  Enter/Space - Start / continue after a lost life
  P           - Pause
  R           - Restart (after the run ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 lives, slower hops
  normal - 3 lives
  hard   - 2 lives, snappier hops
  fixed  - Use the config file values as-is

Examples:
  froggit play
  froggit play --level gauntlet
  froggit play --level-dir ./levels --level river-run
  froggit play --level-file ./my-level.yaml
  froggit play --difficulty hard
  froggit play --config ./my-froggit.yaml --objects ./my-objects.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to play (default: easy)")
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory to load levels from (shadows built-in levels)")
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Path to a single level file (overrides --level)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagObjects, "objects", "", "Path to custom object table YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set level and config selection before creation
	froggit.SetLevelID(flagLevel)
	froggit.SetLevelDir(flagLevelDir)
	froggit.SetLevelFile(flagLevelFile)
	froggit.SetConfigPath(flagConfig)
	froggit.SetObjectsPath(flagObjects)
	froggit.SetDifficultyPreset(flagDifficulty)

	// Create game instance
	game, err := registry.Create("froggit")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
